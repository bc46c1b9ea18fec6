// Package meta parses and formats the "0 !LPUB ..." directive language that
// drives instruction-book layout.
//
// # Architecture
//
// Directives form a keyword tree: each branch node owns a table of child
// nodes keyed by the next keyword, and each leaf node owns a typed value
// with its own token grammar. Parsing a line walks the tree by exact
// keyword match, peels an optional LOCAL or GLOBAL scope token, and hands
// the remaining tokens to the matched leaf. The leaf validates arity and
// shape, stores the value in its active scope slot, and returns a result
// code. Codes either report a plain configuration update (OkRc) or signal
// a structural action the caller must take (start a step, end a callout,
// insert a page).
//
// Every leaf keeps two value slots. Slot zero holds the document-wide
// value; a LOCAL directive switches the leaf to slot one so the override
// lives only until the enclosing step ends and Pop is called. GLOBAL
// writes the base slot and flags the leaf so writers know the value was
// promoted to a document default.
//
// # Usage
//
//	m := meta.New()
//	rc := m.Parse(`0 !LPUB PLI PLACEMENT TOP_LEFT PAGE INSIDE`, here, true)
//	if rc == meta.FailureRc {
//	    // recognized keyword, malformed payload; a report went to the
//	    // diagnostic sink
//	}
//	p := m.LPub.Pli.Placement.Value()
//
// Formatting is the inverse of parsing: each leaf renders its current
// value back into a canonical directive line, and Doc walks the whole
// tree emitting one grammar line per leaf for reference output.
package meta
