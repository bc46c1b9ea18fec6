// Package pkg provides the core libraries for LPub3D Next instruction
// document processing.
//
// # Overview
//
// LPub3D Next turns LDraw building models into the data needed for
// printable building instructions: per-step parts lists (PLI), a bill
// of materials (BOM), and structure diagrams. The pkg directory is
// organized into these areas:
//
//  1. [ldraw] - LDraw/MPD file parsing and part line handling
//  2. [meta] - Meta-command vocabulary, parsing, and documentation
//  3. [pli] - Parts-list packing: sorting, placement, constraints
//  4. [pipeline] - Orchestration (parse → layout → render) used by CLI and server
//  5. [render] - Part image renderers (LDView shell-out, native fallback)
//  6. [catalog] - Part titles, annotations, and element IDs
//  7. [modelgraph] - Submodel structure diagrams via Graphviz
//
// # Architecture
//
// The typical data flow:
//
//	LDraw model (.ldr/.mpd)
//	         ↓
//	    [ldraw] package (parse submodels and part lines)
//	         ↓
//	    [meta] package (interpret 0 !LPUB directives)
//	         ↓
//	    [pli] package (sort, annotate, pack part images)
//	         ↓
//	    PLI/BOM layouts, sheet PNGs, JSON output
//
// # Quick Start
//
// Parse a model and compute its parts-list layouts:
//
//	import (
//	    "context"
//	    "github.com/trevorsandy/lpub3dNext/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Model: "castle.mpd",
//	    Bom:   true,
//	})
//
// # Main Packages
//
// ## Model Input
//
// [ldraw] - Multi-part document parser. Splits an MPD into submodels,
// resolves references, and parses type-1 part lines into colour,
// position, and transform components.
//
// [meta] - The 0 !LPUB meta-command interpreter: a keyword tree with
// typed value parsers, failure collection, and self-documentation.
//
// ## Layout
//
// [pli] - Packs part images into PLI and BOM layouts under size
// constraints (area, square, width, height, columns), with sorting,
// annotation, and per-step instance counting.
//
// [parts] - Static part metadata used for sorting and annotation.
//
// ## Rendering
//
// [render] - Renderer interface plus an LDView shell-out and a native
// deterministic fallback so layout works without external tooling.
//
// [modelgraph] - Submodel reference diagrams (DOT, SVG, PNG).
//
// [fonts] - Embedded fonts for annotation text.
//
// ## Infrastructure
//
// [pipeline] - The complete parse → layout → render pipeline shared by
// CLI and server, with content-addressed caching of layouts and images.
//
// [cache] - Cache backends: file, Redis, and a null cache for tests.
//
// [session] - Server session tracking with memory and file stores.
//
// [catalog] - Part title and element ID lookup, backed by local files,
// MongoDB, or HTTP downloads.
//
// [server] - HTTP API exposing parse, layout, and session endpoints.
//
// [errors] - Coded errors with user-facing messages.
//
// [observability] - Pipeline hooks for progress reporting.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pli/...      # Specific package
//	go test -run Example       # Examples only
//
// [ldraw]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/ldraw
// [meta]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/meta
// [pli]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/pli
// [parts]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/parts
// [pipeline]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/render
// [modelgraph]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/modelgraph
// [fonts]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/cache
// [session]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/session
// [catalog]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/catalog
// [server]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/server
// [errors]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/errors
// [observability]: https://pkg.go.dev/github.com/trevorsandy/lpub3dNext/pkg/observability
package pkg
