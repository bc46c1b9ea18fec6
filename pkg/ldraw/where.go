// Package ldraw provides the model-file plumbing the interpreter and the
// parts-list engine share: source locations, type-1 part reference lines,
// and multi-part (MPD) document splitting.
//
// The package deliberately knows nothing about meta commands beyond the
// fact that comment lines start with "0"; directive interpretation lives
// in pkg/meta.
package ldraw

import "fmt"

// Where identifies a line in a loaded document: the submodel it belongs to
// and the zero-based line number within that submodel. It is carried through
// parsing and layout so diagnostics and write-backs can point at the exact
// source line.
type Where struct {
	ModelName  string `json:"modelName"`
	LineNumber int    `json:"lineNumber"`
}

// String returns "model:line" for diagnostics.
func (w Where) String() string {
	return fmt.Sprintf("%s:%d", w.ModelName, w.LineNumber)
}

// IsSet reports whether the location has been assigned.
func (w Where) IsSet() bool {
	return w.ModelName != "" || w.LineNumber != 0
}

// Next returns the location of the following line in the same submodel.
func (w Where) Next() Where {
	return Where{ModelName: w.ModelName, LineNumber: w.LineNumber + 1}
}
