// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxSize limits frontmatter to prevent YAML parsing attacks.
const MaxSize = 64 * 1024

// delimiter is the frontmatter fence line.
var delimiter = []byte("---")

// Structural errors from Split and Parse.
var (
	// ErrNoFrontmatter indicates the document does not start with a
	// frontmatter block.
	ErrNoFrontmatter = errors.New("document has no YAML frontmatter")

	// ErrUnterminated indicates an opening delimiter with no closing one.
	ErrUnterminated = errors.New("frontmatter is not terminated")

	// ErrTooLarge indicates the frontmatter block exceeds MaxSize.
	ErrTooLarge = errors.New("frontmatter exceeds maximum size")
)

// Manifest is the parsed frontmatter of a skill document.
type Manifest struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	License     string            `yaml:"license,omitempty"`
	Version     string            `yaml:"version,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Split isolates the frontmatter block from the document body.
// The returned frontmatter excludes the delimiter lines; the body starts
// after the closing delimiter line.
func Split(content []byte) (fm, body []byte, err error) {
	if !bytes.HasPrefix(content, delimiter) {
		return nil, nil, ErrNoFrontmatter
	}

	rest := content[len(delimiter):]
	// The opening fence must be a whole line.
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, nil, ErrNoFrontmatter
	}
	rest = rest[1:]

	end := closingDelimiter(rest)
	if end < 0 {
		return nil, nil, ErrUnterminated
	}

	fm = rest[:end]
	if len(fm) > MaxSize {
		return nil, nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, len(fm))
	}

	body = rest[end+len(delimiter):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return fm, body, nil
}

// closingDelimiter returns the offset of the closing fence line within b,
// or -1 when no closing fence exists.
func closingDelimiter(b []byte) int {
	offset := 0
	for _, line := range bytes.SplitAfter(b, []byte("\n")) {
		trimmed := bytes.TrimRight(line, "\r\n")
		if bytes.Equal(trimmed, delimiter) {
			return offset
		}
		offset += len(line)
	}
	return -1
}

// Parse splits the document and decodes its frontmatter into a Manifest.
func Parse(content []byte) (*Manifest, []byte, error) {
	fm, body, err := Split(content)
	if err != nil {
		return nil, nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(fm, &m); err != nil {
		return nil, nil, fmt.Errorf("decoding frontmatter: %w", err)
	}
	return &m, body, nil
}

// Summary extracts the first prose paragraph line from a skill body,
// skipping headings, tables, and code fences. Returns "" when the body has
// no such line.
func Summary(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "|") || strings.HasPrefix(line, "```") {
			continue
		}
		return line
	}
	return ""
}
