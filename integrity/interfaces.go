// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package integrity

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/stacklok/skillproxy/ghref"
)

// ContentFetcher retrieves raw bytes from a remote content address.
type ContentFetcher interface {
	// FetchRaw returns the exact bytes served at the given raw content URL.
	FetchRaw(ctx context.Context, url string) ([]byte, error)
}

// RevisionResolver resolves a mutable branch name to its current immutable
// commit identifier.
type RevisionResolver interface {
	// ResolveBranch returns the commit SHA at the tip of the branch.
	ResolveBranch(ctx context.Context, owner, repo string, branch ghref.Branch) (ghref.CommitSHA, error)
}
