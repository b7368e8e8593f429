// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_Deterministic(t *testing.T) {
	t.Parallel()

	content := []byte("---\nname: demo\ndescription: x\n---\nbody\n")

	first := Checksum(content)
	second := Checksum(content)
	assert.Equal(t, first, second)

	// Matches a straight crypto/sha256 over the same bytes.
	sum := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), first.Encoded())
	assert.Equal(t, hex.EncodeToString(sum[:]), ChecksumHex(content))
}

func TestChecksum_SingleBytePerturbation(t *testing.T) {
	t.Parallel()

	content := []byte("the quick brown fox jumps over the lazy dog")
	perturbed := append([]byte(nil), content...)
	perturbed[0] ^= 0x01

	assert.NotEqual(t, ChecksumHex(content), ChecksumHex(perturbed))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	content := []byte("pinned content")
	recorded := ChecksumHex(content)

	require.NoError(t, Verify(content, recorded))

	err := Verify([]byte("pinned content."), recorded)
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, recorded, mismatch.Expected)
	assert.Equal(t, ChecksumHex([]byte("pinned content.")), mismatch.Actual)
	assert.Contains(t, mismatch.Error(), "checksum mismatch")
}
