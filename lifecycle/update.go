// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"fmt"

	"github.com/stacklok/skillproxy/frontmatter"
	"github.com/stacklok/skillproxy/ghref"
	"github.com/stacklok/skillproxy/integrity"
	"github.com/stacklok/skillproxy/logger"
	"github.com/stacklok/skillproxy/proxy"
)

// UpdateOptions configures an Update operation.
type UpdateOptions struct {
	// ProxyDir is the proxy record directory.
	ProxyDir string
	// DryRun computes and reports the transition without writing.
	DryRun bool
}

// UpdateResult is the outcome of an Update operation.
type UpdateResult struct {
	ProxyName string `json:"proxy"`
	UpToDate  bool   `json:"upToDate"`
	DryRun    bool   `json:"dryRun,omitempty"`

	OldCommit ghref.CommitSHA `json:"oldCommit,omitempty"`
	NewCommit ghref.CommitSHA `json:"commit"`
	OldSHA256 string          `json:"oldSha256,omitempty"`
	NewSHA256 string          `json:"sha256,omitempty"`

	// RemoteName is the remote skill name at the new commit.
	RemoteName string `json:"remoteName,omitempty"`
	// NameChanged flags that the remote skill was renamed since the proxy
	// was created. The proxy keeps its name; the flag is surfaced for the
	// user to act on.
	NameChanged bool `json:"nameChanged,omitempty"`

	RecordPath string `json:"path,omitempty"`
}

// Update re-resolves the tracked branch and re-pins the record to its
// current tip. When the tip equals the pinned commit the operation is a
// no-op, so running it twice in a row is idempotent. When content changed,
// validation gates the rewrite exactly as in Create: a newly invalid
// remote manifest aborts the update and the old record stays untouched.
func (s *Service) Update(ctx context.Context, opts UpdateOptions) (*UpdateResult, error) {
	loaded, err := proxy.Load(opts.ProxyDir)
	if err != nil {
		return nil, err
	}
	meta := loaded.Metadata
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	srcRef, err := ghref.Resolve(meta.Source)
	if err != nil {
		return nil, fmt.Errorf("record has unresolvable source: %w", err)
	}
	// The pinned raw URL carries the skill path; the source URL may not.
	pinRef, err := ghref.Resolve(meta.RawURL)
	if err != nil {
		return nil, fmt.Errorf("record has unresolvable pinned URL: %w", err)
	}
	ref := &ghref.Reference{
		Owner:     srcRef.Owner,
		Repo:      srcRef.Repo,
		Branch:    meta.Branch,
		SkillPath: pinRef.SkillPath,
	}

	newCommit, err := s.resolver.ResolveBranch(ctx, ref.Owner, ref.Repo, ref.Branch)
	if err != nil {
		return nil, fmt.Errorf("resolving branch tip: %w", err)
	}

	result := &UpdateResult{
		ProxyName: loaded.Manifest.Name,
		DryRun:    opts.DryRun,
		OldCommit: meta.Commit,
		NewCommit: newCommit,
		OldSHA256: meta.SHA256,
	}

	if newCommit == meta.Commit {
		result.UpToDate = true
		result.NewSHA256 = meta.SHA256
		logger.Infow("already at branch tip, nothing to update", "commit", newCommit.Short())
		return result, nil
	}
	logger.Infow("branch tip moved", "old", meta.Commit.Short(), "new", newCommit.Short())

	content, err := s.fetcher.FetchRaw(ctx, ref.PinnedRawURL(newCommit))
	if err != nil {
		return nil, fmt.Errorf("fetching new content: %w", err)
	}

	manifest, body, err := validateRemote(content)
	if err != nil {
		// The old record is still valid and still checksummed; leave it.
		return nil, err
	}

	result.NewSHA256 = integrity.ChecksumHex(content)
	result.RemoteName = manifest.Name
	result.NameChanged = manifest.Name+proxy.NameSuffix != loaded.Manifest.Name
	if result.NameChanged {
		logger.Warnf("remote skill is now named %q; proxy keeps its name %q",
			manifest.Name, loaded.Manifest.Name)
	}

	if opts.DryRun {
		logger.Infow("dry run, not rewriting record",
			"commit", newCommit.Short(), "sha256", result.NewSHA256)
		return result, nil
	}

	rec := proxy.Build(&proxy.BuildInput{
		Remote:    manifest,
		Summary:   frontmatter.Summary(body),
		Ref:       ref,
		SourceURL: meta.Source,
		Commit:    newCommit,
		SHA256:    result.NewSHA256,
		CreatedBy: meta.CreatedBy,
		PinnedAt:  s.now(),
		ProxyName: loaded.Manifest.Name,
	})
	// The proxy keeps its recorded identity across updates.
	rec.Description = loaded.Manifest.Description

	rendered, err := rec.Render()
	if err != nil {
		return nil, err
	}
	if err := proxy.ValidateRecord(rendered); err != nil {
		return nil, fmt.Errorf("updated record is invalid: %w", err)
	}

	recordPath, err := proxy.Write(loaded.Dir, rendered)
	if err != nil {
		return nil, err
	}
	result.RecordPath = recordPath
	logger.Infow("rewrote proxy record", "path", recordPath)

	return result, nil
}
