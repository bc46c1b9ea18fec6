package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// colorAbbrev maps LDraw colour codes to the short annotation strings
// used for colour-classed parts. Transparent variants sit at code+32
// with a "T" prefix.
var colorAbbrev = map[int]string{
	1:  "B",   // blue
	2:  "G",   // green
	3:  "DC",  // dark cyan
	4:  "R",   // red
	5:  "M",   // magenta
	6:  "Br",  // brown
	9:  "LB",  // light blue
	10: "LG",  // light green
	11: "C",   // cyan
	12: "LR",  // light red
	13: "P",   // pink
	14: "Y",   // yellow
	22: "Ppl", // purple
	25: "O",   // orange
}

// ColorAbbreviation returns the annotation abbreviation for an LDraw
// colour code, or "" when the code has none. Codes 33-57 resolve to the
// transparent variant of code-32.
func ColorAbbreviation(code string) string {
	n, err := strconv.Atoi(code)
	if err != nil {
		return ""
	}
	if s, ok := colorAbbrev[n]; ok {
		return s
	}
	if s, ok := colorAbbrev[n-32]; ok {
		return "T" + s
	}
	return ""
}

// defaultTitlePatterns extract the annotation from a part description.
// The first capture group is the annotation; whitespace inside it is
// removed. Order matters: more specific patterns come first.
var defaultTitlePatterns = []string{
	`^Technic Axle Flexible\s+(\d+)`,
	`^Technic Axle\s+(\d+\.?\d*)`,
	`^Technic Angle Connector\s+\(?(#?\d*)\)?`,
	`^Technic Arm\s+(\d+\s*x\s*\d+)`,
	`^Technic Beam\s+(\d+\.?\d*\s*x\s*\d+\.?\d*)`,
	`^Technic Flex-System Hose\s+(\d+\.?\d*[LM]?)`,
	`^Electric Cable\s+.*?(\d+\.?\d*)`,
	`^Hose Flexible\s+.*?(\d+\.?\d*)`,
	`^Hose Rigid\s+.*?(\d+\.?\d*L?)`,
}

// Annotator resolves annotation text for a part. Title patterns run in
// order against the part description; the freeform table is keyed by
// lowercased part name.
type Annotator struct {
	titles   []*regexp.Regexp
	freeform map[string]string
}

var wsRx = regexp.MustCompile(`\s`)

// NewAnnotator returns an annotator with the built-in title patterns
// and an empty freeform table.
func NewAnnotator() *Annotator {
	a := &Annotator{freeform: map[string]string{}}
	for _, p := range defaultTitlePatterns {
		a.titles = append(a.titles, regexp.MustCompile(p))
	}
	return a
}

func (a *Annotator) merge(file catalogFile) error {
	for _, p := range file.TitleAnnotations {
		rx, err := regexp.Compile(p)
		if err != nil {
			return err
		}
		a.titles = append(a.titles, rx)
	}
	for k, v := range file.Freeform {
		a.freeform[strings.ToLower(k)] = v
	}
	return nil
}

// TitleAnnotation matches the description against the title patterns
// and returns the first capture with spaces removed.
func (a *Annotator) TitleAnnotation(description string) (string, bool) {
	for _, rx := range a.titles {
		if m := rx.FindStringSubmatch(description); m != nil && len(m) > 1 {
			return wsRx.ReplaceAllString(m[1], ""), true
		}
	}
	return "", false
}

// FreeformAnnotation looks up a freeform annotation by part name.
// Absent an explicit entry, a colour-classed part (name ending in the
// colour code convention is a host concern) yields "".
func (a *Annotator) FreeformAnnotation(partName string) string {
	return a.freeform[strings.ToLower(partName)]
}

// SetFreeform registers or overrides one freeform annotation.
func (a *Annotator) SetFreeform(partName, annotation string) {
	a.freeform[strings.ToLower(partName)] = annotation
}
