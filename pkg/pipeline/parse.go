package pipeline

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/pli"
)

// Document is one parsed model: the interpreter state after walking
// every line, the part occurrences grouped by step, and the bill of
// materials collected across all submodels.
type Document struct {
	Model *ldraw.Model
	Meta  *meta.Meta

	// Steps holds the top-level steps that added parts, in order.
	Steps []Step

	// Bom holds every counted part occurrence, submodels expanded
	// recursively, once per reference.
	Bom []pli.Entry

	// Actions are the passthrough directives a host acts on: inserts,
	// buffers, callouts, MLCad groups, LSynth spans.
	Actions []Action

	// Failures are malformed directives with their locations.
	Failures []Failure

	Lines      int
	Directives int
	StepCount  int
}

// Step is one top-level build step and the parts it added.
type Step struct {
	// Index is the 1-based step number.
	Index int

	// Where locates the closing STEP directive, or the last line of
	// the model for the implicit final step.
	Where ldraw.Where

	Entries []pli.Entry
}

// Action is a recognized directive whose effect belongs to the host,
// not the parts-list engine.
type Action struct {
	Code  meta.Rc     `json:"code"`
	Where ldraw.Where `json:"where"`
}

// Failure is a malformed directive.
type Failure struct {
	Where ldraw.Where `json:"where"`
	Line  string      `json:"line"`
}

// rootKeywords are the second tokens that make a type-0 line a
// directive rather than a comment.
var rootKeywords = map[string]bool{
	"!LPUB":    true,
	"LPUB":     true,
	"PLIST":    true,
	"STEP":     true,
	"CLEAR":    true,
	"ROTSTEP":  true,
	"BUFEXCHG": true,
	"MLCAD":    true,
	"SYNTH":    true,
}

// isDirective reports whether a comment line carries a directive the
// interpreter understands.
func isDirective(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "0" {
		return false
	}
	return rootKeywords[strings.ToUpper(fields[1])]
}

// ParseDocument walks the model through a fresh interpreter. Steps are
// collected from the top submodel; the BOM expands submodel references
// recursively, once per occurrence. With strict set, the first
// malformed directive aborts the parse.
func ParseDocument(model *ldraw.Model, strict bool, logger *log.Logger) (*Document, error) {
	doc := &Document{
		Model: model,
		Meta:  meta.New(),
	}
	w := &walker{
		doc:    doc,
		strict: strict,
		logger: logger,
		active: make(map[string]bool),
	}
	if err := w.walkSubmodel(model.Top, true); err != nil {
		return nil, err
	}
	return doc, nil
}

// walker carries the span state of one document walk. PLI ignore and
// substitution spans follow the interpreter's begin/end codes; MLCad
// skip spans drop part lines entirely.
type walker struct {
	doc    *Document
	strict bool
	logger *log.Logger

	// active guards against submodel reference cycles.
	active map[string]bool

	pliIgnore bool
	bomIgnore bool
	mlcadSkip bool
	sub       *meta.SubData

	current []pli.Entry
}

func (w *walker) walkSubmodel(name string, topLevel bool) error {
	key := ldraw.NormalizeName(name)
	if w.active[key] {
		return errors.New(errors.ErrCodeInvalidModel,
			"submodel reference cycle through %q", name)
	}
	w.active[key] = true
	defer delete(w.active, key)

	lines := w.doc.Model.Lines(name)
	var last ldraw.Where
	for i, line := range lines {
		here := ldraw.Where{ModelName: name, LineNumber: i}
		last = here
		w.doc.Lines++

		switch ldraw.TypeOf(line) {
		case ldraw.LineTypePart:
			if err := w.partLine(line, here, topLevel); err != nil {
				return err
			}
		case ldraw.LineTypeComment:
			if err := w.metaLine(line, here, topLevel); err != nil {
				return err
			}
		}
	}

	// Implicit final step.
	if topLevel && len(w.current) > 0 {
		w.closeStep(last)
	}
	return nil
}

func (w *walker) partLine(line string, here ldraw.Where, topLevel bool) error {
	if w.mlcadSkip {
		return nil
	}
	pl, err := ldraw.ParsePartLine(line)
	if err != nil {
		if w.logger != nil {
			w.logger.Warn("malformed part line", "where", here.String())
		}
		return nil
	}

	entry := pli.Entry{Line: line, Here: here}
	if w.sub != nil {
		entry.Sub = w.sub
		entry.SubOriginalType = pl.Type
	}

	if !w.pliIgnore {
		if topLevel {
			w.current = append(w.current, entry)
		}
		if !w.bomIgnore {
			w.doc.Bom = append(w.doc.Bom, entry)
		}
	}

	// Submodel references expand into the BOM; their own step
	// structure belongs to their callouts, not the top list.
	if w.doc.Model.IsSubmodel(pl.Type) {
		return w.walkSubmodel(pl.Type, false)
	}
	return nil
}

func (w *walker) metaLine(line string, here ldraw.Where, topLevel bool) error {
	doc := w.doc
	rc := doc.Meta.Parse(line, here, w.logger != nil)
	if isDirective(line) {
		doc.Directives++
	}

	switch rc {
	case meta.OkRc:
		// Comment, or a pure state change the interpreter absorbed.

	case meta.FailureRc, meta.RangeErrorRc:
		doc.Failures = append(doc.Failures, Failure{Where: here, Line: line})
		if w.strict {
			return errors.New(errors.ErrCodeInvalidDirective,
				"malformed directive at %s: %s", here.String(), line)
		}

	case meta.StepRc:
		if topLevel {
			w.closeStep(here)
		}

	case meta.RotStepRc:
		doc.Actions = append(doc.Actions, Action{Code: rc, Where: here})
		if topLevel {
			w.closeStep(here)
		}

	case meta.PliBeginIgnRc:
		w.pliIgnore = true
	case meta.PliBeginSub1Rc, meta.PliBeginSub2Rc, meta.PliBeginSub3Rc,
		meta.PliBeginSub4Rc, meta.PliBeginSub5Rc, meta.PliBeginSub6Rc,
		meta.PliBeginSub7Rc, meta.PliBeginSub8Rc:
		v := doc.Meta.LPub.Pli.Begin.Sub.Value()
		w.sub = &v
	case meta.PliEndRc:
		w.pliIgnore = false
		w.sub = nil

	case meta.BomBeginIgnRc:
		w.bomIgnore = true
	case meta.BomEndRc:
		w.bomIgnore = false

	case meta.MLCadSkipBeginRc:
		w.mlcadSkip = true
		doc.Actions = append(doc.Actions, Action{Code: rc, Where: here})
	case meta.MLCadSkipEndRc:
		w.mlcadSkip = false
		doc.Actions = append(doc.Actions, Action{Code: rc, Where: here})

	default:
		doc.Actions = append(doc.Actions, Action{Code: rc, Where: here})
	}
	return nil
}

// closeStep seals the current top-level step. Steps without parts
// advance the step count but produce no parts list.
func (w *walker) closeStep(here ldraw.Where) {
	w.doc.StepCount++
	if len(w.current) == 0 {
		return
	}
	w.doc.Steps = append(w.doc.Steps, Step{
		Index:   w.doc.StepCount,
		Where:   here,
		Entries: w.current,
	})
	w.current = nil
}
