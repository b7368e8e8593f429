// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package proxy

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/skillproxy/frontmatter"
	"github.com/stacklok/skillproxy/ghref"
)

func testBuildInput() *BuildInput {
	return &BuildInput{
		Remote: &frontmatter.Manifest{
			Name:        "demo-skill",
			Description: "A demonstration skill.",
		},
		Summary:   "This skill demonstrates things.",
		Ref:       &ghref.Reference{Owner: "owner", Repo: "repo", Branch: "main", SkillPath: "SKILL.md"},
		SourceURL: "https://github.com/owner/repo",
		Commit:    "0123456789abcdef0123456789abcdef01234567",
		SHA256:    strings.Repeat("ab", 32),
		CreatedBy: "alice",
		PinnedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	rec := Build(testBuildInput())

	assert.Equal(t, "demo-skill-proxy", rec.Name)
	assert.Contains(t, rec.Description, "Proxy for demo-skill by owner.")
	assert.Contains(t, rec.Description, "Use exactly as you would use demo-skill directly.")

	assert.Equal(t, "https://github.com/owner/repo", rec.Metadata.Source)
	assert.Equal(t,
		"https://raw.githubusercontent.com/owner/repo/0123456789abcdef0123456789abcdef01234567/SKILL.md",
		rec.Metadata.RawURL)
	assert.Equal(t, ghref.Branch("main"), rec.Metadata.Branch)
	assert.Equal(t, "alice", rec.Metadata.CreatedBy)
	assert.Equal(t, "20260830_1200", rec.Metadata.CreatedAt)
}

func TestBuild_Body(t *testing.T) {
	t.Parallel()

	in := testBuildInput()
	rec := Build(in)

	// The liability disclaimer appears verbatim.
	assert.Contains(t, rec.Body, LiabilityDisclaimer)

	// The verify-before-use procedure names the pinned address and digest.
	assert.Contains(t, rec.Body, rec.Metadata.RawURL)
	assert.Contains(t, rec.Body, rec.Metadata.SHA256)
	assert.Contains(t, rec.Body, "STOP immediately")
	assert.Contains(t, rec.Body, "commit `0123456789ab`")

	// The captured summary survives.
	assert.Contains(t, rec.Body, in.Summary)
}

func TestBuild_NoSummary(t *testing.T) {
	t.Parallel()

	in := testBuildInput()
	in.Summary = ""
	rec := Build(in)

	assert.Contains(t, rec.Body, "(no summary available — see remote SKILL.md)")
}

func TestBuild_DescriptionTruncated(t *testing.T) {
	t.Parallel()

	in := testBuildInput()
	in.Remote.Description = strings.Repeat("d", frontmatter.MaxDescriptionLength)
	rec := Build(in)

	assert.Len(t, rec.Description, frontmatter.MaxDescriptionLength)
}

func TestBuild_DescriptionTruncatedOnRuneBoundary(t *testing.T) {
	t.Parallel()

	// Multibyte text near the limit: the cut must land on a character
	// boundary, never mid-rune, and the limit counts characters.
	in := testBuildInput()
	in.Remote.Description = strings.Repeat("a", 960) + strings.Repeat("é", 100)
	rec := Build(in)

	assert.True(t, utf8.ValidString(rec.Description))
	assert.LessOrEqual(t, utf8.RuneCountInString(rec.Description), frontmatter.MaxDescriptionLength)
	assert.Empty(t, frontmatter.Validate(&frontmatter.Manifest{
		Name:        rec.Name,
		Description: rec.Description,
	}))
}

func TestRecord_Render(t *testing.T) {
	t.Parallel()

	rec := Build(testBuildInput())
	content, err := rec.Render()
	require.NoError(t, err)

	// Renders as a parseable skill document whose own manifest is valid.
	m, body, err := frontmatter.Parse(content)
	require.NoError(t, err)
	assert.Empty(t, frontmatter.Validate(m))

	assert.Equal(t, "demo-skill-proxy", m.Name)
	assert.Equal(t, "Apache-2.0", m.License)
	assert.Equal(t, rec.Metadata.ToMap(), m.Metadata)
	assert.Contains(t, string(body), "## ⚠️ Verify before use")
}

func TestValidateRecord(t *testing.T) {
	t.Parallel()

	rec := Build(testBuildInput())
	content, err := rec.Render()
	require.NoError(t, err)

	require.NoError(t, ValidateRecord(content))
}

func TestValidateRecord_MissingSnapshotField(t *testing.T) {
	t.Parallel()

	rec := Build(testBuildInput())
	rec.Metadata.SHA256 = ""
	content, err := rec.Render()
	require.NoError(t, err)

	err = ValidateRecord(content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proxy record schema validation failed")
}
