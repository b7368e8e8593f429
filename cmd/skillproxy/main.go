// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command skillproxy creates, verifies, and updates proxy skills that pin
// remote Agent Skills to an immutable commit and checksum.
package main

import "os"

func main() {
	os.Exit(Execute())
}
