// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacklok/skillproxy/httperr"
	"github.com/stacklok/skillproxy/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "skillproxy",
	Short: "Pin remote Agent Skills to immutable, verifiable proxies",
	Long: `skillproxy wraps a remote SKILL.md in a local proxy skill that records
the exact commit and SHA-256 checksum of the content it was reviewed at.
The proxy can later be verified against upstream and rolled forward to a
new pinned revision on demand, so upstream edits never reach an agent
silently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Initialize(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and maps the resulting error, if any,
// onto the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code := httperr.Code(err); code != 0 {
			fmt.Fprintf(os.Stderr, "Error (HTTP %d): %v\n", code, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return exitCode(err)
	}
	return exitOK
}
