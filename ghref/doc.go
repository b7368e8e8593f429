// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package ghref resolves GitHub URLs that point at an Agent Skill into a
canonical reference.

A skill can be referenced by its repository root, a tree or blob URL at a
branch, or an already-raw content URL. Resolve normalizes all of these into
a Reference identifying the owner, repository, branch, and SKILL.md path,
from which the raw content URL can be derived.

The package distinguishes mutable branch names (Branch) from immutable
commit identifiers (CommitSHA) at the type level, so code that requires a
pinned, immutable address cannot accidentally receive a branch name.

Resolution is pure string transformation; no network access occurs here.
*/
package ghref
