// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package ghref

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// SkillFileName is the canonical file name of an Agent Skill document.
const SkillFileName = "SKILL.md"

// DefaultBranch is assumed when a URL does not name a branch.
const DefaultBranch = Branch("main")

const (
	githubHost = "github.com"
	rawHost    = "raw.githubusercontent.com"
)

// Resolution errors. Both indicate bad input, not a remote failure.
var (
	// ErrUnsupportedURL indicates the input names neither github.com nor
	// raw.githubusercontent.com.
	ErrUnsupportedURL = errors.New("unsupported URL: expected github.com or raw.githubusercontent.com")

	// ErrMalformedURL indicates a GitHub URL with too few path segments to
	// identify a repository.
	ErrMalformedURL = errors.New("malformed GitHub URL")
)

// Branch is a mutable, human-named ref that resolves to a commit at query time.
type Branch string

// CommitSHA is the immutable identifier of a point-in-time repository state.
type CommitSHA string

// Short returns the abbreviated form of the commit SHA used in display output.
func (c CommitSHA) Short() string {
	if len(c) <= 12 {
		return string(c)
	}
	return string(c[:12])
}

// Reference identifies a remote skill by repository coordinates and path.
type Reference struct {
	Owner     string
	Repo      string
	Branch    Branch
	SkillPath string
}

// String returns the owner/repo@branch form used in log and error output.
func (r *Reference) String() string {
	return fmt.Sprintf("%s/%s@%s", r.Owner, r.Repo, r.Branch)
}

// RawURL returns the branch-addressed raw content URL for the skill file.
// The address is mutable: it follows the branch tip.
func (r *Reference) RawURL() string {
	return fmt.Sprintf("https://%s/%s/%s/%s/%s", rawHost, r.Owner, r.Repo, r.Branch, r.SkillPath)
}

// PinnedRawURL returns the commit-addressed raw content URL for the skill
// file. Once GitHub has served content at this address, it must serve
// identical bytes forever.
func (r *Reference) PinnedRawURL(sha CommitSHA) string {
	return fmt.Sprintf("https://%s/%s/%s/%s/%s", rawHost, r.Owner, r.Repo, sha, r.SkillPath)
}

// refsHeadsRE matches the mutable refs/heads/<branch> segment some raw URLs carry.
var refsHeadsRE = regexp.MustCompile(`/refs/heads/([^/]+)/`)

// Resolve normalizes any accepted GitHub URL form into a Reference.
//
// Accepted forms:
//
//	https://github.com/owner/repo
//	https://github.com/owner/repo/tree/branch
//	https://github.com/owner/repo/tree/branch/path/to/skill
//	https://github.com/owner/repo/blob/branch/path/to/SKILL.md
//	https://raw.githubusercontent.com/owner/repo/branch/path/to/SKILL.md
//	https://raw.githubusercontent.com/owner/repo/refs/heads/branch/path/SKILL.md
//
// When the path does not end in SKILL.md it is treated as a directory and
// the file name is appended. When no branch is present, DefaultBranch is
// assumed.
func Resolve(input string) (*Reference, error) {
	u := strings.TrimRight(strings.TrimSpace(input), "/")

	if strings.Contains(u, rawHost) {
		return resolveRaw(u)
	}
	if !strings.Contains(u, githubHost) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, input)
	}
	return resolveWeb(u, input)
}

// resolveRaw handles URLs already in raw.githubusercontent.com form.
func resolveRaw(u string) (*Reference, error) {
	normalized := refsHeadsRE.ReplaceAllString(u, "/$1/")

	parsed, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}

	parts := splitPath(parsed.Path)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: raw URL needs owner/repo/branch: %s", ErrMalformedURL, u)
	}

	skillPath := SkillFileName
	if len(parts) > 3 {
		skillPath = ensureSkillFile(strings.Join(parts[3:], "/"))
	}

	return &Reference{
		Owner:     parts[0],
		Repo:      parts[1],
		Branch:    Branch(parts[2]),
		SkillPath: skillPath,
	}, nil
}

// resolveWeb handles github.com web URLs (repo root, tree, and blob forms).
func resolveWeb(u, input string) (*Reference, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}

	parts := splitPath(parsed.Path)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: URL needs owner/repo: %s", ErrMalformedURL, input)
	}

	ref := &Reference{
		Owner:     parts[0],
		Repo:      parts[1],
		Branch:    DefaultBranch,
		SkillPath: SkillFileName,
	}

	switch {
	case len(parts) == 2:
		// Repository root: defaults already set.

	case parts[2] == "tree":
		if len(parts) < 4 {
			return nil, fmt.Errorf("%w: tree URL missing branch: %s", ErrMalformedURL, input)
		}
		ref.Branch = Branch(parts[3])
		if len(parts) > 4 {
			ref.SkillPath = ensureSkillFile(strings.Join(parts[4:], "/"))
		}

	case parts[2] == "blob":
		if len(parts) < 5 {
			return nil, fmt.Errorf("%w: blob URL missing file path: %s", ErrMalformedURL, input)
		}
		ref.Branch = Branch(parts[3])
		ref.SkillPath = ensureSkillFile(strings.Join(parts[4:], "/"))

	default:
		// owner/repo/branch shorthand.
		ref.Branch = Branch(parts[2])
	}

	return ref, nil
}

// splitPath splits a URL path into its non-empty segments.
func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// ensureSkillFile appends the skill file name to paths that reference a
// directory rather than the file itself.
func ensureSkillFile(p string) string {
	if strings.HasSuffix(p, SkillFileName) {
		return p
	}
	return strings.TrimRight(p, "/") + "/" + SkillFileName
}
