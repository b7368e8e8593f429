// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/stacklok/skillproxy/frontmatter"
	"github.com/stacklok/skillproxy/ghref"
	"github.com/stacklok/skillproxy/integrity"
	"github.com/stacklok/skillproxy/logger"
	"github.com/stacklok/skillproxy/proxy"
)

// CreateOptions configures a Create operation.
type CreateOptions struct {
	// SourceURL is the GitHub URL of the remote skill, in any accepted form.
	SourceURL string
	// OutputDir is the parent directory proxy record directories are
	// created under.
	OutputDir string
	// CreatedBy is the actor identity recorded in provenance.
	CreatedBy string
}

// CreateResult reports a successfully created proxy record.
type CreateResult struct {
	ProxyName  string          `json:"proxy"`
	RecordPath string          `json:"path"`
	Commit     ghref.CommitSHA `json:"commit"`
	SHA256     string          `json:"sha256"`
}

// Create fetches and validates the remote skill, pins it to the current
// branch tip, and writes the proxy record. Validation gates the write:
// no filesystem side effect occurs unless the remote skill is valid.
func (s *Service) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	ref, err := ghref.Resolve(opts.SourceURL)
	if err != nil {
		return nil, err
	}
	logger.Infow("resolved source URL", "source", opts.SourceURL, "raw_url", ref.RawURL())

	content, err := s.fetcher.FetchRaw(ctx, ref.RawURL())
	if err != nil {
		return nil, fmt.Errorf("fetching remote skill: %w", err)
	}

	manifest, body, err := validateRemote(content)
	if err != nil {
		return nil, err
	}
	logger.Infow("remote skill is valid", "name", manifest.Name)

	commit, err := s.resolver.ResolveBranch(ctx, ref.Owner, ref.Repo, ref.Branch)
	if err != nil {
		return nil, fmt.Errorf("resolving branch tip: %w", err)
	}
	sha256 := integrity.ChecksumHex(content)
	logger.Infow("pinned remote skill", "commit", commit.Short(), "sha256", sha256)

	rec := proxy.Build(&proxy.BuildInput{
		Remote:    manifest,
		Summary:   frontmatter.Summary(body),
		Ref:       ref,
		SourceURL: opts.SourceURL,
		Commit:    commit,
		SHA256:    sha256,
		CreatedBy: opts.CreatedBy,
		PinnedAt:  s.now(),
	})

	rendered, err := rec.Render()
	if err != nil {
		return nil, err
	}
	if err := proxy.ValidateRecord(rendered); err != nil {
		return nil, fmt.Errorf("generated record is invalid: %w", err)
	}

	recordPath, err := proxy.Write(filepath.Join(opts.OutputDir, rec.Name), rendered)
	if err != nil {
		return nil, err
	}
	logger.Infow("wrote proxy record", "path", recordPath)

	return &CreateResult{
		ProxyName:  rec.Name,
		RecordPath: recordPath,
		Commit:     commit,
		SHA256:     sha256,
	}, nil
}
