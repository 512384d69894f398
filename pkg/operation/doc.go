/*
Package operation implements the migration pipeline: pick files, filter them
on content, ask the model, write the answer back.

	+-------------+
	|   Runner    |  file or directory?
	+------+------+
	       |
	+------+------+
	|  selector   |  lazy glob walk (directories only)
	+------+------+
	       |
	+------+------+
	|  Processor  |  read -> Matches -> Migrate -> WriteFileAtomic
	+------+------+
	       |
	+------+------+
	|   Summary   |  one FileResult per file
	+-------------+

🎯 Purpose:
- Processes files strictly one at a time; a file's read, API call and write
  finish before the next file starts
- Turns every per-file failure into an explicit FileResult so the runner can
  keep going and report the failures at the end
- Leaves a file untouched unless the model returned non-empty content

⚡ Errors:
- ErrUsage, ErrPathNotFound: returned before any file is read
- ErrIORead, ErrIOWrite, ErrUpstream: carried by FileError inside a FileResult
- ErrFilesFailed: returned by Run when any FileResult failed
*/
package operation
