// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package integrity

import (
	"fmt"

	"github.com/opencontainers/go-digest"
)

// Checksum returns the SHA-256 digest of the exact byte sequence.
func Checksum(content []byte) digest.Digest {
	return digest.SHA256.FromBytes(content)
}

// ChecksumHex returns the bare hex encoding of the SHA-256 digest, the form
// stored in proxy record metadata.
func ChecksumHex(content []byte) string {
	return Checksum(content).Encoded()
}

// MismatchError reports a recomputed digest that differs from the recorded
// one. Because pinned addresses are contractually immutable, a mismatch is
// evidence of unexpected drift or corruption, not a transient failure.
type MismatchError struct {
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Verify recomputes the checksum of content and compares it to the recorded
// hex digest. Returns a *MismatchError when they differ.
func Verify(content []byte, expectedHex string) error {
	actual := ChecksumHex(content)
	if actual != expectedHex {
		return &MismatchError{Expected: expectedHex, Actual: actual}
	}
	return nil
}
