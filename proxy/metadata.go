// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package proxy

import (
	"errors"
	"fmt"
	"time"

	"github.com/stacklok/skillproxy/ghref"
)

// NameSuffix is appended to the remote skill name to form the proxy name.
const NameSuffix = "-proxy"

// TimestampLayout is the format of proxy-created-at values.
const TimestampLayout = "20060102_1504"

// Metadata keys in the proxy record frontmatter.
const (
	KeySource    = "proxy-source"
	KeyRawURL    = "proxy-raw-url"
	KeyCommit    = "proxy-commit"
	KeySHA256    = "proxy-sha256"
	KeyBranch    = "proxy-branch"
	KeyCreatedBy = "proxy-created-by"
	KeyCreatedAt = "proxy-created-at"
)

// ErrIncompleteMetadata indicates a record missing the fields needed to
// verify or update it.
var ErrIncompleteMetadata = errors.New("proxy metadata missing required fields")

// Metadata is the pinned snapshot carried in a proxy record.
//
// Commit and RawURL describe the immutable pin: RawURL addresses the exact
// bytes whose digest is SHA256. Branch is the mutable ref tracked for
// updates; it is never used to verify.
type Metadata struct {
	// Source is the original human-facing URL the proxy was created from.
	Source string `yaml:"proxy-source"`
	// RawURL is the commit-pinned raw content address.
	RawURL string `yaml:"proxy-raw-url"`
	// Commit is the immutable revision the proxy is pinned to.
	Commit ghref.CommitSHA `yaml:"proxy-commit"`
	// SHA256 is the bare hex digest of the pinned content bytes.
	SHA256 string `yaml:"proxy-sha256"`
	// Branch is the mutable ref tracked for future updates.
	Branch ghref.Branch `yaml:"proxy-branch"`
	// CreatedBy is the identity that created or last updated the pin.
	CreatedBy string `yaml:"proxy-created-by"`
	// CreatedAt is the UTC timestamp of the last pin, in TimestampLayout.
	CreatedAt string `yaml:"proxy-created-at"`
}

// Validate checks that the metadata can support verify and update.
func (m *Metadata) Validate() error {
	var missing []string
	if m.RawURL == "" {
		missing = append(missing, KeyRawURL)
	}
	if m.SHA256 == "" {
		missing = append(missing, KeySHA256)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrIncompleteMetadata, missing)
	}
	return nil
}

// ToMap returns the metadata as the string map stored in frontmatter.
// Values round-trip byte-identically through Load.
func (m *Metadata) ToMap() map[string]string {
	return map[string]string{
		KeySource:    m.Source,
		KeyRawURL:    m.RawURL,
		KeyCommit:    string(m.Commit),
		KeySHA256:    m.SHA256,
		KeyBranch:    string(m.Branch),
		KeyCreatedBy: m.CreatedBy,
		KeyCreatedAt: m.CreatedAt,
	}
}

// MetadataFromMap reconstructs Metadata from a frontmatter metadata map.
// Absent keys yield zero values; Branch falls back to the default branch
// for records written before branch tracking.
func MetadataFromMap(m map[string]string) Metadata {
	meta := Metadata{
		Source:    m[KeySource],
		RawURL:    m[KeyRawURL],
		Commit:    ghref.CommitSHA(m[KeyCommit]),
		SHA256:    m[KeySHA256],
		Branch:    ghref.Branch(m[KeyBranch]),
		CreatedBy: m[KeyCreatedBy],
		CreatedAt: m[KeyCreatedAt],
	}
	if meta.Branch == "" {
		meta.Branch = ghref.DefaultBranch
	}
	return meta
}

// FormatTimestamp renders a pin time in the record timestamp layout (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
