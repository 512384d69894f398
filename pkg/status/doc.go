/*
Package status tracks what happened to each file of a migration run.

	+-------------+      +-------------+
	| FileResult  | ---> |   Summary   |
	| (per file)  |      |  (counts)   |
	+-------------+      +------+------+
	                            |
	                     FormatSummary

🎯 Purpose:
- Gives every processed file an explicit outcome (migrated, unchanged,
  skipped, failed) instead of relying on errors to stop the run
- Lets the caller decide the exit status from the summary
- Replaces file contents atomically (WriteFileAtomic)
*/
package status
