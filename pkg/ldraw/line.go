package ldraw

import (
	"fmt"
	"strconv"
	"strings"
)

// LineType classifies an LDraw line by its leading token.
type LineType int

const (
	// LineTypeComment is a "0 ..." line: comments and meta commands.
	LineTypeComment LineType = iota
	// LineTypePart is a "1 ..." line: a sub-file reference (part or submodel).
	LineTypePart
	// LineTypeGeometry covers types 2-5 (lines, triangles, quads, optional lines).
	LineTypeGeometry
	// LineTypeOther is anything else, including blank lines.
	LineTypeOther
)

// TypeOf reports the LDraw line type of a raw line.
func TypeOf(line string) LineType {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return LineTypeOther
	}
	switch fields[0] {
	case "0":
		return LineTypeComment
	case "1":
		return LineTypePart
	case "2", "3", "4", "5":
		return LineTypeGeometry
	}
	return LineTypeOther
}

// PartLine is a parsed type-1 sub-file reference:
//
//	1 <colour> x y z a b c d e f g h i <file>
//
// The rotation matrix is row-major (a b c / d e f / g h i) and the file
// name keeps its original case; LDraw name comparisons are case-insensitive
// and callers should use [NormalizeName] for lookups.
type PartLine struct {
	Color    string
	Position [3]float64
	Matrix   [9]float64
	Type     string
}

// ParsePartLine parses a type-1 line. The file name may contain spaces;
// everything after the fourteenth field belongs to it.
func ParsePartLine(line string) (PartLine, error) {
	fields := strings.Fields(line)
	if len(fields) < 15 || fields[0] != "1" {
		return PartLine{}, fmt.Errorf("not a type-1 part line: %q", line)
	}

	var p PartLine
	p.Color = fields[1]
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[2+i], 64)
		if err != nil {
			return PartLine{}, fmt.Errorf("part line position field %d: %w", i, err)
		}
		p.Position[i] = v
	}
	for i := 0; i < 9; i++ {
		v, err := strconv.ParseFloat(fields[5+i], 64)
		if err != nil {
			return PartLine{}, fmt.Errorf("part line matrix field %d: %w", i, err)
		}
		p.Matrix[i] = v
	}
	p.Type = strings.Join(fields[14:], " ")
	return p, nil
}

// String re-serializes the part line in canonical LDraw form.
func (p PartLine) String() string {
	var b strings.Builder
	b.WriteString("1 ")
	b.WriteString(p.Color)
	for _, v := range p.Position {
		fmt.Fprintf(&b, " %s", formatFloat(v))
	}
	for _, v := range p.Matrix {
		fmt.Fprintf(&b, " %s", formatFloat(v))
	}
	b.WriteString(" ")
	b.WriteString(p.Type)
	return b.String()
}

// WithRotation returns a copy of p with position zeroed and the rotation
// matrix replaced. Display-orientation control files use this to restate a
// part in its preferred viewing rotation.
func (p PartLine) WithRotation(m [9]float64) PartLine {
	out := p
	out.Position = [3]float64{}
	out.Matrix = m
	return out
}

// NormalizeName lowercases an LDraw file name and flips backslashes so the
// same part resolves identically regardless of how the source spelled it.
func NormalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "\\", "/"))
}

// BaseName strips directory and extension from a part name, lowercased.
// "s\\4744s01.dat" becomes "4744s01".
func BaseName(name string) string {
	n := NormalizeName(name)
	if i := strings.LastIndex(n, "/"); i >= 0 {
		n = n[i+1:]
	}
	if i := strings.LastIndex(n, "."); i >= 0 {
		n = n[:i]
	}
	return n
}

// formatFloat prints a float the way LDraw files do: no exponent, no
// trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
