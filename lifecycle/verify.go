// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stacklok/skillproxy/ghref"
	"github.com/stacklok/skillproxy/httperr"
	"github.com/stacklok/skillproxy/integrity"
	"github.com/stacklok/skillproxy/logger"
	"github.com/stacklok/skillproxy/proxy"
)

// VerifyOptions configures a Verify operation.
type VerifyOptions struct {
	// ProxyDir is the proxy record directory.
	ProxyDir string
	// SkipUpstreamCheck disables the informational branch-tip comparison.
	SkipUpstreamCheck bool
}

// VerifyReport is the outcome of a Verify operation.
type VerifyReport struct {
	ProxyName string          `json:"proxy"`
	Intact    bool            `json:"intact"`
	Commit    ghref.CommitSHA `json:"commit"`
	SHA256    string          `json:"sha256"`

	// UpstreamCommit is the current branch tip, when the upstream check ran.
	UpstreamCommit ghref.CommitSHA `json:"upstreamCommit,omitempty"`
	// UpstreamAhead reports whether the branch tip moved past the pin.
	// Informational only; a moved branch is not an integrity failure.
	UpstreamAhead bool `json:"upstreamAhead,omitempty"`
}

// Verify re-fetches the pinned address and compares its digest to the
// recorded one. It never mutates the record. A mismatch is returned as a
// *integrity.MismatchError: the pinned address is contractually immutable,
// so drift there is a security-relevant event, not a transient failure.
func (s *Service) Verify(ctx context.Context, opts VerifyOptions) (*VerifyReport, error) {
	loaded, err := proxy.Load(opts.ProxyDir)
	if err != nil {
		return nil, err
	}
	meta := loaded.Metadata
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	logger.Infow("verifying proxy record",
		"proxy", loaded.Manifest.Name,
		"commit", meta.Commit.Short(),
		"created_by", meta.CreatedBy,
		"created_at", meta.CreatedAt)

	content, err := s.fetcher.FetchRaw(ctx, meta.RawURL)
	if err != nil {
		return nil, fmt.Errorf("fetching pinned content: %w", err)
	}

	report := &VerifyReport{
		ProxyName: loaded.Manifest.Name,
		Commit:    meta.Commit,
		SHA256:    meta.SHA256,
	}

	if err := integrity.Verify(content, meta.SHA256); err != nil {
		var mismatch *integrity.MismatchError
		if errors.As(err, &mismatch) {
			logger.Errorw("checksum mismatch on immutable address",
				"expected", mismatch.Expected,
				"actual", mismatch.Actual)
		}
		return report, err
	}
	report.Intact = true
	logger.Info("checksum matches, proxy record is intact")

	if !opts.SkipUpstreamCheck {
		s.checkUpstream(ctx, &meta, report)
	}

	return report, nil
}

// checkUpstream reports, without acting on, whether the tracked branch has
// moved past the pinned commit. Failures here are logged and swallowed:
// the check is informational and must not fail an otherwise intact verify.
func (s *Service) checkUpstream(ctx context.Context, meta *proxy.Metadata, report *VerifyReport) {
	ref, err := ghref.Resolve(meta.Source)
	if err != nil {
		logger.Debugf("skipping upstream check, unresolvable source: %v", err)
		return
	}

	latest, err := s.resolver.ResolveBranch(ctx, ref.Owner, ref.Repo, meta.Branch)
	if err != nil {
		if httperr.IsStatus(err, http.StatusNotFound) {
			logger.Warnf("upstream branch %q no longer exists; the pin still verifies but cannot be updated", meta.Branch)
		} else {
			logger.Warnf("upstream check failed: %v", err)
		}
		return
	}

	report.UpstreamCommit = latest
	if latest != meta.Commit {
		report.UpstreamAhead = true
		logger.Infow("upstream branch has moved; review changes and run update",
			"branch", meta.Branch, "latest", latest.Short())
	} else {
		logger.Infow("proxy record is at the branch tip", "branch", meta.Branch)
	}
}
