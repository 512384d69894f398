// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/llmigrate/pkg/config"
	"github.com/walteh/llmigrate/pkg/llm"
	"github.com/walteh/llmigrate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the dependencies of the root command
type rootOpts struct {
	// dir is where config.yml is looked up; empty means the working directory
	dir string
	// newMigrator builds the completion client from the configured prompt
	newMigrator func(prompt string) (llm.Migrator, error)
	// out receives the end-of-run summary
	out io.Writer
}

func defaultRootOpts() *rootOpts {
	return &rootOpts{
		newMigrator: func(prompt string) (llm.Migrator, error) {
			return llm.New(prompt)
		},
		out: os.Stdout,
	}
}

// newRootCmd creates the llmigrate command
func newRootCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llmigrate <path>",
		Short: "Rewrite source files with a language model, one file at a time",
		Long: `llmigrate reads a prompt from config.yml in the working directory and
sends every selected file under <path> to a chat completion model, writing the
answer back in place.

<path> may be a directory, scanned with the configured glob, or a single file,
which is processed regardless of the glob.`,
		Example: `  # config.yml
  prompt: Convert these jest tests to vitest.
  glob: "**/*.test.ts"
  contentMatchCriteria: ["jest."]

  llmigrate ./src`,
		Args:          exactlyOnePath,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionInfo().Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, opts, args[0])
		},
	}

	cmd.SetVersionTemplate(versionTemplate())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Errorf("%w: %s", operation.ErrUsage, err)
	})

	return cmd
}

// exactlyOnePath rejects anything but a single non-blank argument
func exactlyOnePath(_ *cobra.Command, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return errors.Errorf("%w: please provide exactly one path to scan", operation.ErrUsage)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, opts *rootOpts, path string) error {
	ctx := cmd.Context()

	dir := opts.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}

	cfg, err := config.Load(ctx, dir)
	if err != nil {
		return err
	}
	report := newReporter(ctx, opts.out)
	report.Config(cfg.Location())

	client, err := opts.newMigrator(cfg.Prompt)
	if err != nil {
		return err
	}

	runner, err := operation.NewRunner(cfg, client)
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	summary, err := runner.Run(ctx, path)
	if summary != nil {
		report.Summary(summary)
	}
	return err
}

// exitCode maps a command error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, operation.ErrUsage), errors.Is(err, operation.ErrPathNotFound):
		return 2
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, llm.ErrMissingAPIKey):
		return 3
	default:
		return 1
	}
}
