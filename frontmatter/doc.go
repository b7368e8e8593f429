// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package frontmatter parses and validates the YAML frontmatter block of an
Agent Skill document.

A SKILL.md starts with a frontmatter block delimited by "---" lines,
followed by a markdown body. Split isolates the two with explicit errors
for a missing or unterminated block. Parse decodes the block into a
Manifest, and Validate checks the manifest against the skill naming and
length rules. Each violated rule is reported as a distinct ValidationError
kind so callers can gate on specific failures.
*/
package frontmatter
