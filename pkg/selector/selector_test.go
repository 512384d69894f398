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

package selector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent dir")
		require.NoError(t, os.WriteFile(path, []byte("content of "+f), 0644), "writing file")
	}
	return root
}

func collect(t *testing.T, ctx context.Context, root, pattern string) []string {
	t.Helper()
	var got []string
	for path, err := range Select(ctx, root, pattern) {
		require.NoError(t, err, "Select should not yield an error")
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	return got
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		pattern string
		want    []string
	}{
		{
			name:    "default_glob_is_recursive",
			files:   []string{"a.txt", "b.txt", "sub/c.txt", "sub/deep/d.go"},
			pattern: "**/*",
			want:    []string{"a.txt", "b.txt", "sub/c.txt", "sub/deep/d.go"},
		},
		{
			name:    "extension_filter_top_level",
			files:   []string{"x.ts", "x.js", "sub/y.ts"},
			pattern: "*.ts",
			want:    []string{"x.ts"},
		},
		{
			name:    "extension_filter_recursive",
			files:   []string{"x.ts", "x.js", "sub/y.ts", "sub/y.tsx"},
			pattern: "**/*.ts",
			want:    []string{"x.ts", "sub/y.ts"},
		},
		{
			name:    "brace_alternatives",
			files:   []string{"a.ts", "b.tsx", "c.js"},
			pattern: "*.{ts,tsx}",
			want:    []string{"a.ts", "b.tsx"},
		},
		{
			name:    "hidden_entries_skipped",
			files:   []string{"main.go", ".env", ".git/config", "pkg/.cache/x.go", "pkg/y.go"},
			pattern: "**/*",
			want:    []string{"main.go", "pkg/y.go"},
		},
		{
			name:    "explicit_hidden_pattern",
			files:   []string{".github/workflows/ci.yml", "ci.yml"},
			pattern: ".github/**/*.yml",
			want:    []string{".github/workflows/ci.yml"},
		},
		{
			name:    "no_matches",
			files:   []string{"a.txt"},
			pattern: "*.go",
			want:    nil,
		},
	}

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, tt.files...)
			got := collect(t, ctx, root, tt.pattern)
			assert.ElementsMatch(t, tt.want, got, "selected files should match")
		})
	}
}

func TestSelectYieldsAbsoluteFilePaths(t *testing.T) {
	root := writeTree(t, "a.txt", "sub/b.txt")
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))

	for path, err := range Select(context.Background(), root, "**") {
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path), "path %s should be absolute", path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.False(t, info.IsDir(), "directories should not be yielded: %s", path)
	}
}

func TestSelectRelativeRoot(t *testing.T) {
	root := writeTree(t, "a.txt")
	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, root)
	require.NoError(t, err)

	var got []string
	for path, err := range Select(context.Background(), rel, "*.txt") {
		require.NoError(t, err)
		got = append(got, path)
	}
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(root, "a.txt"), got[0], "relative roots should be resolved")
}

func TestSelectStopsWhenConsumerBreaks(t *testing.T) {
	root := writeTree(t, "a.txt", "b.txt", "c.txt")

	count := 0
	for _, err := range Select(context.Background(), root, "*.txt") {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count, "sequence should stop after break")
}

func TestSelectInvalidPattern(t *testing.T) {
	root := writeTree(t, "a.txt")

	var errs []error
	for path, err := range Select(context.Background(), root, "[a.txt") {
		assert.Empty(t, path)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1, "exactly one error should be yielded")
	assert.Contains(t, errs[0].Error(), "invalid glob pattern")
}

func TestSelectCancelledContext(t *testing.T) {
	root := writeTree(t, "a.txt", "b.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var errs []error
	for _, err := range Select(ctx, root, "**/*") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1, "cancellation should be yielded once")
	assert.ErrorIs(t, errs[0], context.Canceled)
}

func TestSelectMissingRoot(t *testing.T) {
	var errs []error
	for _, err := range Select(context.Background(), filepath.Join(t.TempDir(), "missing"), "**/*") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1, "walk error should be yielded once")
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}
