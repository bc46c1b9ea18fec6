// Package modelgraph renders the submodel-reference structure of a
// document as a Graphviz diagram.
//
// Each submodel becomes a node; an edge records that one submodel
// references another via a type-1 line, labelled with the reference
// count. The top submodel is highlighted so the build root stands out.
package modelgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// Options configures structure diagram rendering.
type Options struct {
	// Detailed includes line and part counts in node labels.
	// When false, only the submodel name is shown.
	Detailed bool

	// Parts includes external part references as leaf nodes. Off by
	// default; real models reference hundreds of parts.
	Parts bool
}

// ToDOT converts a document's submodel structure to Graphviz DOT
// format. The resulting DOT string can be rendered with [RenderSVG] or
// [RenderPNG].
func ToDOT(m *ldraw.Model, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	parts := make(map[string]bool)
	for _, name := range m.Submodels() {
		label := fmtLabel(m, name, opts.Detailed)
		attrs := fmtAttrs(m, name, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", ldraw.NormalizeName(name), strings.Join(attrs, ", "))

		if opts.Parts {
			for part := range refCounts(m, name, false) {
				parts[part] = true
			}
		}
	}
	for part := range parts {
		fmt.Fprintf(&buf, "  %q [style=\"filled\", fillcolor=lightgrey, fontsize=18];\n", part)
	}

	buf.WriteString("\n")
	for _, name := range m.Submodels() {
		from := ldraw.NormalizeName(name)
		for to, n := range refCounts(m, name, true) {
			if n > 1 {
				fmt.Fprintf(&buf, "  %q -> %q [label=\"%dx\"];\n", from, to, n)
			} else {
				fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
			}
		}
		if opts.Parts {
			for to, n := range refCounts(m, name, false) {
				fmt.Fprintf(&buf, "  %q -> %q [label=\"%dx\", style=dashed];\n", from, to, n)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// refCounts tallies the type-1 references of one submodel, split into
// submodel references and external part references.
func refCounts(m *ldraw.Model, name string, submodels bool) map[string]int {
	counts := make(map[string]int)
	for _, line := range m.Lines(name) {
		if ldraw.TypeOf(line) != ldraw.LineTypePart {
			continue
		}
		pl, err := ldraw.ParsePartLine(line)
		if err != nil {
			continue
		}
		if m.IsSubmodel(pl.Type) != submodels {
			continue
		}
		counts[ldraw.NormalizeName(pl.Type)]++
	}
	return counts
}

func fmtLabel(m *ldraw.Model, name string, detailed bool) string {
	if !detailed {
		return ldraw.NormalizeName(name)
	}
	lines := m.Lines(name)
	partCount := 0
	for _, line := range lines {
		if ldraw.TypeOf(line) == ldraw.LineTypePart {
			partCount++
		}
	}
	return fmt.Sprintf("%s\nlines: %d\nparts: %d", ldraw.NormalizeName(name), len(lines), partCount)
}

func fmtAttrs(m *ldraw.Model, name, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if ldraw.NormalizeName(name) == ldraw.NormalizeName(m.Top) {
		attrs = append(attrs, "fillcolor=lightyellow", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root so the diagram scales from a
// zero origin regardless of Graphviz's padding.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
