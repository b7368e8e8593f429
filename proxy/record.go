// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package proxy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/stacklok/skillproxy/frontmatter"
	"github.com/stacklok/skillproxy/ghref"
)

// ErrNoRecord indicates the proxy directory has no SKILL.md.
var ErrNoRecord = errors.New("no SKILL.md found in proxy directory")

// Loaded is a proxy record read back from disk.
type Loaded struct {
	// Dir is the proxy directory the record was loaded from.
	Dir string
	// Path is the full path of the record file.
	Path string
	// Raw is the exact file content as read.
	Raw []byte
	// Manifest is the parsed proxy frontmatter.
	Manifest *frontmatter.Manifest
	// Body is the markdown body after the frontmatter block.
	Body []byte
	// Metadata is the pinned snapshot extracted from the frontmatter.
	Metadata Metadata
}

// Load reads and parses the proxy record in dir.
// Structural problems (missing file, malformed frontmatter) are usage
// errors: the record is the caller's own artifact, not remote content.
func Load(dir string) (*Loaded, error) {
	path := filepath.Join(dir, ghref.SkillFileName)

	raw, err := os.ReadFile(path) //#nosec G304 -- path constructed from user-provided proxy directory
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoRecord, dir)
		}
		return nil, fmt.Errorf("reading proxy record: %w", err)
	}

	manifest, body, err := frontmatter.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing proxy record %s: %w", path, err)
	}

	return &Loaded{
		Dir:      dir,
		Path:     path,
		Raw:      raw,
		Manifest: manifest,
		Body:     body,
		Metadata: MetadataFromMap(manifest.Metadata),
	}, nil
}

// Write writes a rendered record atomically under dir and returns the
// record path. The content lands in a temp file first and is renamed into
// place, so a crash never leaves a partially written record.
func Write(dir string, content []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating proxy directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".skill-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp record: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp record: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("setting record permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp record: %w", err)
	}

	path := filepath.Join(dir, ghref.SkillFileName)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("replacing proxy record: %w", err)
	}
	return path, nil
}

// SkillsRoot returns the proxy skills root within the given data home
// directory. This is the injectable, testable form. For the standard XDG
// location, use DefaultSkillsRoot.
func SkillsRoot(dataHome string) string {
	return filepath.Join(dataHome, "skillproxy", "skills")
}

// DefaultSkillsRoot returns the default skills root directory using XDG
// base directory conventions.
func DefaultSkillsRoot() string {
	return SkillsRoot(xdg.DataHome)
}
