// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/stacklok/skillproxy/lifecycle"
)

var (
	verifyProxyDir     string
	verifySkipUpstream bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a proxy skill against its pinned checksum",
	Long: `Re-fetches the pinned content at the recorded commit and compares its
SHA-256 checksum against the one stored in the proxy. Also reports, as
advisory information, whether the upstream branch has moved past the
pinned commit. Never modifies the proxy.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		report, err := svc.Verify(cmd.Context(), lifecycle.VerifyOptions{
			ProxyDir:          verifyProxyDir,
			SkipUpstreamCheck: verifySkipUpstream,
		})
		if report != nil {
			if jsonErr := printJSON(report); jsonErr != nil {
				return jsonErr
			}
		}
		return err
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyProxyDir, "proxy", "", "Directory of the proxy skill (required)")
	verifyCmd.Flags().BoolVar(&verifySkipUpstream, "skip-upstream-check", false,
		"Skip the advisory check for newer upstream commits")
	if err := verifyCmd.MarkFlagRequired("proxy"); err != nil {
		panic(err)
	}
}
