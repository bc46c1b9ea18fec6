package catalog

import (
	"fmt"
	"strings"
)

// Shape is the badge shape a fixed-style part uses.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCircle
	ShapeSquare
	ShapeRectangle
)

// Category groups fixed-style parts; each category has its own enable
// toggle in the annotation meta.
type Category int

const (
	CategoryNone Category = iota
	CategoryAxle
	CategoryBeam
	CategoryCable
	CategoryConnector
	CategoryHose
	CategoryPanel
)

// StyleTable maps part names to their fixed badge style and category.
type StyleTable struct {
	entries map[string]styleInfo
}

type styleInfo struct {
	shape    Shape
	category Category
}

// builtinStyles covers the common Technic parts the original ships
// styles for. Axles badge as circles, beams/connectors/cables/hoses as
// squares, panels as rectangles.
var builtinStyles = map[string]styleInfo{
	// Axles.
	"3704.dat":  {ShapeCircle, CategoryAxle},
	"4519.dat":  {ShapeCircle, CategoryAxle},
	"3705.dat":  {ShapeCircle, CategoryAxle},
	"32073.dat": {ShapeCircle, CategoryAxle},
	"3706.dat":  {ShapeCircle, CategoryAxle},
	"44294.dat": {ShapeCircle, CategoryAxle},
	"3707.dat":  {ShapeCircle, CategoryAxle},
	"60485.dat": {ShapeCircle, CategoryAxle},
	"3737.dat":  {ShapeCircle, CategoryAxle},
	"23948.dat": {ShapeCircle, CategoryAxle},
	"3708.dat":  {ShapeCircle, CategoryAxle},
	// Beams (liftarms).
	"18654.dat": {ShapeSquare, CategoryBeam},
	"43857.dat": {ShapeSquare, CategoryBeam},
	"32523.dat": {ShapeSquare, CategoryBeam},
	"32316.dat": {ShapeSquare, CategoryBeam},
	"32524.dat": {ShapeSquare, CategoryBeam},
	"40490.dat": {ShapeSquare, CategoryBeam},
	"32525.dat": {ShapeSquare, CategoryBeam},
	"41239.dat": {ShapeSquare, CategoryBeam},
	"32278.dat": {ShapeSquare, CategoryBeam},
	// Angle connectors.
	"32013.dat": {ShapeSquare, CategoryConnector},
	"32034.dat": {ShapeSquare, CategoryConnector},
	"32016.dat": {ShapeSquare, CategoryConnector},
	"32192.dat": {ShapeSquare, CategoryConnector},
	"32015.dat": {ShapeSquare, CategoryConnector},
	"32014.dat": {ShapeSquare, CategoryConnector},
	// Cables and hoses.
	"5306.dat":  {ShapeSquare, CategoryCable},
	"76263.dat": {ShapeSquare, CategoryHose},
	"76250.dat": {ShapeSquare, CategoryHose},
	// Panels.
	"32190.dat": {ShapeRectangle, CategoryPanel},
	"32191.dat": {ShapeRectangle, CategoryPanel},
	"64681.dat": {ShapeRectangle, CategoryPanel},
	"64683.dat": {ShapeRectangle, CategoryPanel},
}

// NewStyleTable returns a table primed with the built-in entries.
func NewStyleTable() *StyleTable {
	t := &StyleTable{entries: make(map[string]styleInfo, len(builtinStyles))}
	for k, v := range builtinStyles {
		t.entries[k] = v
	}
	return t
}

// Style returns the fixed badge shape and category for a part name.
// Parts without a fixed style report ShapeNone.
func (t *StyleTable) Style(partName string) (Shape, Category, bool) {
	info, ok := t.entries[strings.ToLower(partName)]
	if !ok {
		return ShapeNone, CategoryNone, false
	}
	return info.shape, info.category, true
}

func (t *StyleTable) merge(entries []styleEntry) error {
	for _, e := range entries {
		shape, err := parseShape(e.Style)
		if err != nil {
			return err
		}
		cat, err := parseCategory(e.Category)
		if err != nil {
			return err
		}
		t.entries[strings.ToLower(e.Part)] = styleInfo{shape, cat}
	}
	return nil
}

func parseShape(s string) (Shape, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return ShapeNone, nil
	case "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	case "rectangle":
		return ShapeRectangle, nil
	}
	return ShapeNone, fmt.Errorf("unknown badge shape %q", s)
}

func parseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CategoryNone, nil
	case "axle":
		return CategoryAxle, nil
	case "beam":
		return CategoryBeam, nil
	case "cable":
		return CategoryCable, nil
	case "connector":
		return CategoryConnector, nil
	case "hose":
		return CategoryHose, nil
	case "panel":
		return CategoryPanel, nil
	}
	return CategoryNone, fmt.Errorf("unknown style category %q", s)
}
