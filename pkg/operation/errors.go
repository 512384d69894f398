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
	"fmt"

	"github.com/walteh/llmigrate/pkg/llm"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUsage means the command line was not a single non-empty path.
	ErrUsage = errors.Base("usage error")
	// ErrPathNotFound means the path to scan does not exist.
	ErrPathNotFound = errors.Base("path not found")
	// ErrIORead means a file could not be read as text.
	ErrIORead = errors.Base("read error")
	// ErrIOWrite means a migrated file could not be written back.
	ErrIOWrite = errors.Base("write error")
	// ErrUpstream means the completion API call for a file failed.
	ErrUpstream = llm.ErrUpstream
	// ErrFilesFailed is returned by Runner.Run when at least one file failed.
	ErrFilesFailed = errors.Base("files failed")
)

// FileError is a failure tied to a single file. Both Kind and Err match
// errors.Is.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
