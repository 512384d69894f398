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

// Package selector enumerates the files of a directory tree that match a
// doublestar glob pattern.
package selector

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// errStop ends the walk when the consumer stops ranging.
var errStop = errors.Base("selector: stopped")

// 🔍 Select returns a lazy, single-pass sequence of absolute paths of regular
// files below root whose slash-separated relative path matches pattern.
//
// Hidden files and directories (a path segment starting with ".") are skipped
// unless the pattern itself names a hidden segment. A walk or pattern error is
// yielded once and ends the sequence.
func Select(ctx context.Context, root, pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := zerolog.Ctx(ctx)

		absRoot, err := filepath.Abs(root)
		if err != nil {
			yield("", errors.Errorf("resolving %s: %w", root, err))
			return
		}

		if !doublestar.ValidatePattern(pattern) {
			yield("", errors.Errorf("invalid glob pattern %q", pattern))
			return
		}

		allowHidden := matchesHidden(pattern)
		fsys := os.DirFS(absRoot)

		err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return errors.Errorf("walking %s: %w", path, err)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if path == "." {
				return nil
			}

			if !allowHidden && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() || !isRegular(fsys, path, d) {
				return nil
			}

			matched, err := doublestar.Match(pattern, path)
			if err != nil {
				return errors.Errorf("matching %s against %q: %w", path, pattern, err)
			}
			if !matched {
				return nil
			}

			logger.Trace().Str("file", path).Str("pattern", pattern).Msg("file selected")

			if !yield(filepath.Join(absRoot, filepath.FromSlash(path)), nil) {
				return errStop
			}
			return nil
		})

		if err != nil && !errors.Is(err, errStop) {
			yield("", err)
		}
	}
}

// isRegular reports whether the entry is a regular file, following symlinks.
func isRegular(fsys fs.FS, path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	info, err := fs.Stat(fsys, path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// matchesHidden reports whether the pattern explicitly targets a hidden segment.
func matchesHidden(pattern string) bool {
	for _, segment := range strings.Split(pattern, "/") {
		if strings.HasPrefix(segment, ".") && segment != "." && segment != ".." {
			return true
		}
	}
	return false
}
