// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/stacklok/skillproxy/lifecycle"
)

var (
	updateProxyDir string
	updateDryRun   bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-pin a proxy skill to the current upstream branch tip",
	Long: `Resolves the recorded branch to its current tip, re-fetches and
re-validates the content, and rewrites the proxy with the new pinned
commit and checksum. A no-op when the branch tip still matches the
pinned commit.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		result, err := svc.Update(cmd.Context(), lifecycle.UpdateOptions{
			ProxyDir: updateProxyDir,
			DryRun:   updateDryRun,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateProxyDir, "proxy", "", "Directory of the proxy skill (required)")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false,
		"Report what would change without rewriting the proxy")
	if err := updateCmd.MarkFlagRequired("proxy"); err != nil {
		panic(err)
	}
}
