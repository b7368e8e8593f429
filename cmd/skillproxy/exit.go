// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"

	"github.com/stacklok/skillproxy/github"
	"github.com/stacklok/skillproxy/httperr"
	"github.com/stacklok/skillproxy/integrity"
	"github.com/stacklok/skillproxy/lifecycle"
)

// Exit codes distinguish failure classes so scripts and CI can react to
// them without parsing error text.
const (
	exitOK         = 0
	exitUsage      = 1
	exitRemote     = 2
	exitValidation = 3
	exitMismatch   = 4
)

// exitCode classifies err into one of the exit code constants. Checksum
// mismatches and remote validation failures are checked before the
// broader network class because they wrap fetch results.
func exitCode(err error) int {
	var mismatch *integrity.MismatchError
	if errors.As(err, &mismatch) {
		return exitMismatch
	}

	var invalid *lifecycle.ValidationFailedError
	if errors.As(err, &invalid) {
		return exitValidation
	}

	if errors.Is(err, github.ErrRemoteUnavailable) ||
		errors.Is(err, github.ErrNotFound) ||
		errors.Is(err, github.ErrContentTooLarge) {
		return exitRemote
	}

	// An HTTP status on the chain means a remote host answered, whatever
	// wrapping the error picked up on the way here.
	if httperr.Code(err) != 0 {
		return exitRemote
	}

	// Everything else is treated as a usage error: bad URLs, missing
	// flags, unreadable or incomplete local proxy records.
	return exitUsage
}
