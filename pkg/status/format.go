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
	"fmt"
)

// FormatResult formats a per-file result message with emojis
func FormatResult(r FileResult) string {
	switch r.Status {
	case StatusMigrated:
		return fmt.Sprintf("📝 Migrated %s", r.Path)
	case StatusUnchanged:
		return fmt.Sprintf("👍 Unchanged %s (empty response)", r.Path)
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", r.Path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s: %v", r.Path, r.Err)
	default:
		return fmt.Sprintf("❔ Unknown %s", r.Path)
	}
}

// FormatSummary formats the end-of-run counts
func FormatSummary(s *Summary) string {
	return fmt.Sprintf("%d migrated, %d unchanged, %d skipped, %d failed",
		s.Count(StatusMigrated),
		s.Count(StatusUnchanged),
		s.Count(StatusSkipped),
		s.Count(StatusFailed),
	)
}
