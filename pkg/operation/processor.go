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
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/llmigrate/pkg/config"
	"github.com/walteh/llmigrate/pkg/llm"
	"github.com/walteh/llmigrate/pkg/log"
	"github.com/walteh/llmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📄 Processor migrates one file at a time
type Processor struct {
	cfg    *config.Config
	client llm.Migrator
}

// 🏭 NewProcessor creates a processor
func NewProcessor(cfg *config.Config, client llm.Migrator) (*Processor, error) {
	if cfg == nil {
		return nil, errors.Errorf("config is required")
	}
	if client == nil {
		return nil, errors.Errorf("migration client is required")
	}
	return &Processor{cfg: cfg, client: client}, nil
}

// 🏃 Process reads path, filters it on content, sends it to the model and
// writes the answer back. Failures are reported in the result, never returned.
func (p *Processor) Process(ctx context.Context, path string) status.FileResult {
	start := time.Now()
	res := p.process(ctx, path)
	res.Duration = time.Since(start)
	return res
}

func (p *Processor) process(ctx context.Context, path string) status.FileResult {
	logger := zerolog.Ctx(ctx)
	out := log.FromContext(ctx)

	fail := func(kind, err error) status.FileResult {
		return status.FileResult{
			Path:   path,
			Status: status.StatusFailed,
			Err:    &FileError{Kind: kind, Path: path, Err: err},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(ErrIORead, err)
	}
	if !utf8.Valid(data) {
		return fail(ErrIORead, errors.New("content is not valid UTF-8 text"))
	}
	content := string(data)

	if !p.cfg.Matches(content) {
		logger.Debug().Str("file", path).Msg("no content match criteria found, skipping")
		return status.FileResult{Path: path, Status: status.StatusSkipped}
	}

	out.Processing(path)
	migrated, err := p.client.Migrate(ctx, content)
	if err != nil {
		return fail(ErrUpstream, err)
	}
	out.Processed(path)

	if migrated == "" {
		logger.Debug().Str("file", path).Msg("empty response, leaving file untouched")
		return status.FileResult{Path: path, Status: status.StatusUnchanged}
	}

	if err := status.WriteFileAtomic(path, []byte(migrated)); err != nil {
		return fail(ErrIOWrite, err)
	}

	return status.FileResult{Path: path, Status: status.StatusMigrated}
}
