package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/trevorsandy/lpub3dNext/pkg/pipeline"
)

// parseCommand creates the parse command for running the directive
// interpreter over a model.
func (c *CLI) parseCommand() *cobra.Command {
	var (
		strict  bool
		summary bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "parse <model>",
		Short: "Interpret the LPub directives in a model file",
		Long: `Interpret the LPub directives in an LDraw model file.

Walks every submodel, runs each directive through the interpreter and
reports directive counts, steps, and malformed lines with their
locations. With --strict the first malformed directive fails the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args[0], strict, summary, output)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first malformed directive")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a per-directive result table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the parse report as JSON")

	return cmd
}

// parseReport is the JSON shape written by --output.
type parseReport struct {
	Model      string             `json:"model"`
	Lines      int                `json:"lines"`
	Directives int                `json:"directives"`
	Steps      int                `json:"steps"`
	BomParts   int                `json:"bom_parts"`
	Actions    int                `json:"actions"`
	Failures   []pipeline.Failure `json:"failures,omitempty"`
}

func (c *CLI) runParse(ctx context.Context, model string, strict, summary bool, output string) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)

	prog := newProgress(c.Logger)
	doc, err := runner.Parse(ctx, pipeline.Options{Model: model, Strict: strict})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d lines, %d directives", doc.Lines, doc.Directives))

	printSuccess("Parse complete")
	printDetail("%d steps, %d BOM parts, %d actions", doc.StepCount, len(doc.Bom), len(doc.Actions))

	for _, f := range doc.Failures {
		printWarning("malformed directive at %s: %s", f.Where, f.Line)
	}

	if summary {
		printNewline()
		fmt.Println(actionTable(doc))
	}

	if output != "" {
		report := parseReport{
			Model:      model,
			Lines:      doc.Lines,
			Directives: doc.Directives,
			Steps:      doc.StepCount,
			BomParts:   len(doc.Bom),
			Actions:    len(doc.Actions),
			Failures:   doc.Failures,
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
			return err
		}
		printFile(output)
	}

	return nil
}

// actionTable renders a per-result-code count of everything the
// interpreter acted on.
func actionTable(doc *pipeline.Document) string {
	counts := make(map[string]int)
	for _, a := range doc.Actions {
		counts[a.Code.String()]++
	}
	if doc.StepCount > 0 {
		counts["STEP"] += doc.StepCount
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, fmt.Sprintf("%d", counts[name])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Result", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
