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
	"time"
)

// 📊 FileStatus is the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusMigrated             // Model returned content, file rewritten
	StatusUnchanged            // Model returned nothing, file left alone
	StatusSkipped              // Content criteria did not match
	StatusFailed               // Read, upstream or write error
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusMigrated:
		return "migrated"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult is the explicit per-file result returned by the processor
type FileResult struct {
	Path     string        // Absolute path of the file
	Status   FileStatus    // Outcome
	Err      error         // Set when Status is StatusFailed
	Duration time.Duration // Time spent on the file, including the API call
}

// 📈 Summary accumulates the results of a run in processing order
type Summary struct {
	Results []FileResult
	counts  map[FileStatus]int
}

// 🏭 NewSummary creates an empty summary
func NewSummary() *Summary {
	return &Summary{counts: make(map[FileStatus]int)}
}

// Track records a result.
func (s *Summary) Track(r FileResult) {
	if s.counts == nil {
		s.counts = make(map[FileStatus]int)
	}
	s.Results = append(s.Results, r)
	s.counts[r.Status]++
}

// Count returns how many files ended with the given status.
func (s *Summary) Count(st FileStatus) int {
	return s.counts[st]
}

// Total returns how many files were visited.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Failed reports whether any file failed.
func (s *Summary) Failed() bool {
	return s.counts[StatusFailed] > 0
}

// Failures returns the failed results in processing order.
func (s *Summary) Failures() []FileResult {
	var out []FileResult
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			out = append(out, r)
		}
	}
	return out
}
