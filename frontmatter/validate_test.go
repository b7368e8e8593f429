// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest Manifest
	}{
		{
			name:     "typical manifest",
			manifest: Manifest{Name: "demo-skill", Description: "x"},
		},
		{
			name:     "single character name",
			manifest: Manifest{Name: "a", Description: "x"},
		},
		{
			name:     "name at length limit",
			manifest: Manifest{Name: strings.Repeat("a", MaxNameLength), Description: "x"},
		},
		{
			name:     "description at length limit",
			manifest: Manifest{Name: "demo", Description: strings.Repeat("d", MaxDescriptionLength)},
		},
		{
			// Character limit, not byte limit: multibyte text at the
			// character limit is fine even though it is over in bytes.
			name:     "multibyte description at length limit",
			manifest: Manifest{Name: "demo", Description: strings.Repeat("é", MaxDescriptionLength)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Empty(t, Validate(&tt.manifest))
		})
	}
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest Manifest
		wantKind Kind
	}{
		{
			name:     "missing name",
			manifest: Manifest{Description: "x"},
			wantKind: MissingName,
		},
		{
			name:     "uppercase name",
			manifest: Manifest{Name: "Demo-Skill", Description: "x"},
			wantKind: InvalidNameFormat,
		},
		{
			name:     "leading hyphen",
			manifest: Manifest{Name: "-demo", Description: "x"},
			wantKind: InvalidNameFormat,
		},
		{
			name:     "trailing hyphen",
			manifest: Manifest{Name: "demo-", Description: "x"},
			wantKind: InvalidNameFormat,
		},
		{
			name:     "doubled hyphen",
			manifest: Manifest{Name: "demo--skill", Description: "x"},
			wantKind: DoubledHyphen,
		},
		{
			name:     "name over limit",
			manifest: Manifest{Name: strings.Repeat("a", MaxNameLength+1), Description: "x"},
			wantKind: NameTooLong,
		},
		{
			name:     "missing description",
			manifest: Manifest{Name: "demo"},
			wantKind: MissingDescription,
		},
		{
			name:     "whitespace-only description",
			manifest: Manifest{Name: "demo", Description: "   "},
			wantKind: MissingDescription,
		},
		{
			name:     "description over limit",
			manifest: Manifest{Name: "demo", Description: strings.Repeat("d", MaxDescriptionLength+1)},
			wantKind: DescriptionTooLong,
		},
		{
			name:     "multibyte description over limit",
			manifest: Manifest{Name: "demo", Description: strings.Repeat("é", MaxDescriptionLength+1)},
			wantKind: DescriptionTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := Validate(&tt.manifest)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantKind, errs[0].Kind)
		})
	}
}

func TestValidate_IndependentFields(t *testing.T) {
	t.Parallel()

	// Both fields invalid: one error per field, first rule per field wins.
	errs := Validate(&Manifest{Name: "Bad--Name-", Description: ""})
	require.Len(t, errs, 2)
	assert.Equal(t, InvalidNameFormat, errs[0].Kind)
	assert.Equal(t, MissingDescription, errs[1].Kind)
}
