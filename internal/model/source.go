// Package model defines the data shared between the conversion engine, the
// adapters and the UI.
package model

// Path represents a file system path.
type Path string

// Source is a spec file selected for conversion.
type Source struct {
	Origin Path
	// Hash is the SHA-256 of the file content at selection time.
	Hash string
}

// Observation is what an instrumented test run recorded about the value of
// one expression.
type Observation struct {
	ClassName  string
	Enumerable bool
}

// ArrayLike reports whether the observed value behaves like an array for
// matching purposes.
func (o Observation) ArrayLike() bool {
	return o.Enumerable
}
