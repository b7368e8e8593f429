// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSkill = `---
name: demo-skill
description: A demonstration skill.
license: Apache-2.0
metadata:
  category: testing
---

# Demo Skill

This skill demonstrates frontmatter parsing.

## Usage

Run it.
`

func TestSplit(t *testing.T) {
	t.Parallel()

	fm, body, err := Split([]byte(sampleSkill))
	require.NoError(t, err)

	assert.Contains(t, string(fm), "name: demo-skill")
	assert.NotContains(t, string(fm), "---")
	assert.Contains(t, string(body), "# Demo Skill")
	assert.NotContains(t, string(body), "description:")
}

func TestSplit_CRLF(t *testing.T) {
	t.Parallel()

	content := "---\r\nname: demo\r\ndescription: x\r\n---\r\nbody text\r\n"
	fm, body, err := Split([]byte(content))
	require.NoError(t, err)
	assert.Contains(t, string(fm), "name: demo")
	assert.Contains(t, string(body), "body text")
}

func TestSplit_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no frontmatter",
			content: "# Just markdown\n",
			wantErr: ErrNoFrontmatter,
		},
		{
			name:    "empty document",
			content: "",
			wantErr: ErrNoFrontmatter,
		},
		{
			name:    "delimiter not a whole line",
			content: "--- name: x\nbody\n",
			wantErr: ErrNoFrontmatter,
		},
		{
			name:    "unterminated block",
			content: "---\nname: demo\ndescription: x\n",
			wantErr: ErrUnterminated,
		},
		{
			name:    "closing delimiter embedded mid-line",
			content: "---\nname: demo --- not a fence\n",
			wantErr: ErrUnterminated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Split([]byte(tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSplit_TooLarge(t *testing.T) {
	t.Parallel()

	content := "---\n" + strings.Repeat("x: y\n", MaxSize/5+1) + "---\n"
	_, _, err := Split([]byte(content))
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestParse(t *testing.T) {
	t.Parallel()

	m, body, err := Parse([]byte(sampleSkill))
	require.NoError(t, err)

	assert.Equal(t, "demo-skill", m.Name)
	assert.Equal(t, "A demonstration skill.", m.Description)
	assert.Equal(t, "Apache-2.0", m.License)
	assert.Equal(t, map[string]string{"category": "testing"}, m.Metadata)
	assert.Contains(t, string(body), "# Demo Skill")
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	content := "---\nname: [unclosed\n---\nbody\n"
	_, _, err := Parse([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding frontmatter")
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "skips headings",
			body: "# Title\n\nFirst real paragraph.\n\nSecond.\n",
			want: "First real paragraph.",
		},
		{
			name: "skips tables and fence markers",
			body: "| a | b |\n```\nProse at last.\n",
			want: "Prose at last.",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
		{
			name: "headings only",
			body: "# One\n## Two\n",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Summary([]byte(tt.body)))
		})
	}
}
