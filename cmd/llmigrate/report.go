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
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/llmigrate/pkg/status"
)

// 📢 reporter prints the end-of-run feedback the user actually reads
type reporter struct {
	out io.Writer
	log zerolog.Logger
}

// 🎯 newReporter creates a reporter writing to out
func newReporter(ctx context.Context, out io.Writer) *reporter {
	return &reporter{
		out: out,
		log: *zerolog.Ctx(ctx),
	}
}

// 📄 Config prints which config file the run uses
func (r *reporter) Config(path string) {
	pterm.Info.WithWriter(r.out).WithPrefix(pterm.Prefix{Text: "📄"}).Printfln("using %s", path)
	r.log.Debug().Str("path", path).Msg("using config")
}

// 📊 Summary prints the per-status counts and every failed file
func (r *reporter) Summary(s *status.Summary) {
	if s == nil {
		return
	}

	msg := status.FormatSummary(s)
	if s.Failed() {
		pterm.Warning.WithWriter(r.out).WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
		for _, f := range s.Failures() {
			pterm.Error.WithWriter(r.out).Println(status.FormatResult(f))
		}
	} else {
		pterm.Success.WithWriter(r.out).WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	}
	r.log.Info().
		Int("migrated", s.Count(status.StatusMigrated)).
		Int("unchanged", s.Count(status.StatusUnchanged)).
		Int("skipped", s.Count(status.StatusSkipped)).
		Int("failed", s.Count(status.StatusFailed)).
		Msg("migration finished")
}

// 🔍 Error prints a fatal error
func (r *reporter) Error(description string, err error) {
	pterm.Error.WithWriter(r.out).WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	pterm.Error.WithWriter(r.out).Println(err)
	r.log.Error().Err(err).Msg(description)
}
