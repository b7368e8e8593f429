// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"time"

	"github.com/stacklok/skillproxy/integrity"
)

// Service composes the remote collaborators into the three lifecycle
// operations. It holds no per-record state; operations on different proxy
// records are independent.
type Service struct {
	fetcher  integrity.ContentFetcher
	resolver integrity.RevisionResolver
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for pin timestamps.
// Used by tests for deterministic records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a lifecycle service over the given collaborators.
// Panics if either collaborator is nil.
func NewService(fetcher integrity.ContentFetcher, resolver integrity.RevisionResolver, opts ...Option) *Service {
	if fetcher == nil || resolver == nil {
		panic("lifecycle: NewService called with nil collaborator")
	}

	s := &Service{
		fetcher:  fetcher,
		resolver: resolver,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
