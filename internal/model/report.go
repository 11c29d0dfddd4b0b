package model

// Report holds the conversion result for a single source file.
type Report struct {
	Source  Source
	Records []Record
	Changed bool
	Diff    string // unified diff of the rewrite, empty when unchanged
	Err     error  // file-level failure; the file was left untouched
}

// Estimate is the number of operator matchers found in a source file.
type Estimate struct {
	Source   Source
	Matchers int
	Err      error
}

// Target is an expression whose runtime type decides how it is converted.
type Target struct {
	Source Source
	ID     string // file_begin_end
	Line   int
	Text   string
}

// RecordCount is a record together with how many times it was applied.
type RecordCount struct {
	Record Record
	Count  int
}
