package model

import "fmt"

// Record describes one class of syntactic transformation, independent of the
// concrete text it was applied to.
type Record struct {
	OriginalSyntax  string
	ConvertedSyntax string
}

func (r Record) String() string {
	return fmt.Sprintf("%q -> %q", r.OriginalSyntax, r.ConvertedSyntax)
}

// Conversion is the outcome of converting one parsed file.
type Conversion struct {
	Text    string
	Records []Record
	Changed bool
}
