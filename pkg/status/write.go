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

package status

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 💾 WriteFileAtomic replaces path with content through a temp file in the
// same directory and a rename. The original permission bits are kept. A
// symlink is resolved first so the link survives and its target is updated.
func WriteFileAtomic(path string, content []byte) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving %s: %w", path, err)
	}
	path = resolved

	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stat %s: %w", path, err)
	}
	// rename would bypass the file's own write bit
	if info.Mode().Perm()&0o200 == 0 {
		return errors.Errorf("%s is read-only: %w", path, os.ErrPermission)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Clean up temp file
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return errors.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}
	committed = true

	return nil
}
