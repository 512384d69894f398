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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/llmigrate/pkg/config"
	"github.com/walteh/llmigrate/pkg/llm"
	"github.com/walteh/llmigrate/pkg/log"
	"github.com/walteh/llmigrate/pkg/selector"
	"github.com/walteh/llmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner drives a migration over a file or a directory, one file at a time
type Runner struct {
	cfg       *config.Config
	processor *Processor
}

// 🏗️ NewRunner creates a new runner
func NewRunner(cfg *config.Config, client llm.Migrator) (*Runner, error) {
	processor, err := NewProcessor(cfg, client)
	if err != nil {
		return nil, errors.Errorf("creating processor: %w", err)
	}
	return &Runner{
		cfg:       cfg,
		processor: processor,
	}, nil
}

// 🏃 Run migrates path. A directory is scanned with the configured glob; a
// single file is processed directly, ignoring the glob. Per-file failures do
// not stop the run; they are collected in the summary and reported as
// ErrFilesFailed once every file has been visited.
func (r *Runner) Run(ctx context.Context, path string) (*status.Summary, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.Errorf("%w: please provide a path to scan", ErrUsage)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, errors.Errorf("checking %s: %w", path, err)
	}

	summary := status.NewSummary()

	if info.IsDir() {
		if err := r.runDir(ctx, path, summary); err != nil {
			return summary, err
		}
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.Errorf("resolving %s: %w", path, err)
		}
		r.track(ctx, summary, r.processor.Process(ctx, abs))
	}

	if summary.Failed() {
		return summary, errors.Errorf("%w: %d of %d files", ErrFilesFailed, summary.Count(status.StatusFailed), summary.Total())
	}

	return summary, nil
}

func (r *Runner) runDir(ctx context.Context, root string, summary *status.Summary) error {
	out := log.FromContext(ctx)
	out.Header("migrating " + root + " (" + r.cfg.Glob + ")")

	for file, err := range selector.Select(ctx, root, r.cfg.Glob) {
		if err != nil {
			return errors.Errorf("scanning %s: %w", root, err)
		}

		r.track(ctx, summary, r.processor.Process(ctx, file))

		if err := ctx.Err(); err != nil {
			return errors.Errorf("migration interrupted: %w", err)
		}
	}

	if summary.Total() == 0 {
		out.Warningf("no files matched %q under %s", r.cfg.Glob, root)
	}

	return nil
}

func (r *Runner) track(ctx context.Context, summary *status.Summary, res status.FileResult) {
	summary.Track(res)

	if res.Status == status.StatusSkipped {
		zerolog.Ctx(ctx).Trace().Str("file", res.Path).Msg(status.FormatResult(res))
		return
	}
	log.FromContext(ctx).LogResult(ctx, res)
}
