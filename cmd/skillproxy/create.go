// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacklok/skillproxy/env"
	"github.com/stacklok/skillproxy/github"
	"github.com/stacklok/skillproxy/lifecycle"
	"github.com/stacklok/skillproxy/proxy"
)

var (
	createURL       string
	createOutputDir string
	createCreatedBy string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a proxy skill pinned to a remote SKILL.md",
	Long: `Fetches the remote skill, validates its frontmatter, resolves the
branch tip to a commit SHA, and writes a proxy SKILL.md that records the
pinned commit and SHA-256 checksum.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, envReader, err := newService()
		if err != nil {
			return err
		}

		opts := lifecycle.CreateOptions{
			SourceURL: createURL,
			OutputDir: createOutputDir,
			CreatedBy: createCreatedBy,
		}
		if opts.OutputDir == "" {
			opts.OutputDir = proxy.DefaultSkillsRoot()
		}
		if opts.CreatedBy == "" {
			opts.CreatedBy = env.Actor(envReader)
		}

		result, err := svc.Create(cmd.Context(), opts)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	createCmd.Flags().StringVar(&createURL, "url", "", "GitHub URL of the remote skill (required)")
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "",
		"Directory to write the proxy into (default: XDG data dir)")
	createCmd.Flags().StringVar(&createCreatedBy, "created-by", "",
		"Recorded creator identity (default: $USER)")
	if err := createCmd.MarkFlagRequired("url"); err != nil {
		panic(err)
	}
}

// newService wires a GitHub client into a lifecycle service, picking up
// GITHUB_TOKEN from the environment when present.
func newService() (*lifecycle.Service, env.Reader, error) {
	envReader := &env.OSReader{}
	client, err := github.NewClient(github.WithToken(env.GitHubToken(envReader)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return lifecycle.NewService(client, client), envReader, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
