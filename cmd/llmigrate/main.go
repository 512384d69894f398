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
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/walteh/llmigrate/pkg/log"
)

// LogLevelEnv selects the zerolog level of the diagnostic log on stderr
const LogLevelEnv = "LLMIGRATE_LOG_LEVEL"

func main() {
	// A missing .env is fine; the key may come from the real environment.
	_ = godotenv.Load()

	logger := setupLogging()
	ctx := logger.WithContext(context.Background())
	ctx = log.NewContext(ctx, log.New(os.Stdout, logger))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(defaultRootOpts())
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		newReporter(ctx, os.Stderr).Error("llmigrate failed", err)
	}

	stop()
	os.Exit(exitCode(err))
}

// setupLogging builds the diagnostic logger from LLMIGRATE_LOG_LEVEL
func setupLogging() zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := strings.TrimSpace(os.Getenv(LogLevelEnv)); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
