package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
	"github.com/trevorsandy/lpub3dNext/pkg/modelgraph"
)

// structureCommand creates the structure command for rendering the
// submodel-reference graph.
func (c *CLI) structureCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		parts    bool
	)

	cmd := &cobra.Command{
		Use:   "structure <model>",
		Short: "Render the submodel-reference graph",
		Long: `Render the submodel-reference structure of a model as a Graphviz
diagram. Each submodel becomes a node, each type-1 reference an edge;
the top submodel is highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStructure(cmd.Context(), args[0], format, output, detailed, parts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <model>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include line and part counts in node labels")
	cmd.Flags().BoolVar(&parts, "parts", false, "include external part references as leaf nodes")

	return cmd
}

func (c *CLI) runStructure(ctx context.Context, input, format, output string, detailed, parts bool) error {
	model, err := ldraw.Load(input)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded model", "model", model.Name, "submodels", len(model.Submodels()))

	dot := modelgraph.ToDOT(model, modelgraph.Options{Detailed: detailed, Parts: parts})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = modelgraph.RenderSVG(dot)
	case "png":
		data, err = modelgraph.RenderPNG(dot)
	default:
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", format)
	}
	if err != nil {
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}

	printSuccess("Structure diagram complete")
	printFile(outputPath)
	return nil
}
