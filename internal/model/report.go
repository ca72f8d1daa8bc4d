package model

// FileStatus is the outcome of processing one file.
type FileStatus string

const (
	// StatusTransformed means at least one class name was prefixed.
	StatusTransformed FileStatus = "transformed"
	// StatusUnchanged means no scoped literal contained a known class.
	StatusUnchanged FileStatus = "unchanged"
	// StatusFailed means the file could not be read, parsed, patched or written.
	StatusFailed FileStatus = "failed"
)

// FileResult holds the outcome of the per-file pipeline.
type FileResult struct {
	Source Source
	Status FileStatus
	Edits  int    // number of rewritten literals
	Diff   string // unified diff, only filled when requested
	DryRun bool   // true when the patched bytes were not written
	Err    error
}

// Summary aggregates the file results of a run.
type Summary struct {
	Total       int
	Transformed int
	Unchanged   int
	Failed      int
	DryRun      bool
}

// Add accounts for a single file result.
func (s *Summary) Add(result FileResult) {
	s.Total++

	switch result.Status {
	case StatusTransformed:
		s.Transformed++
	case StatusUnchanged:
		s.Unchanged++
	case StatusFailed:
		s.Failed++
	}
}
