package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trevorsandy/lpub3dNext/pkg/observability"
	"github.com/trevorsandy/lpub3dNext/pkg/pipeline"
)

// layoutCommand creates the layout command for packing parts lists.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output       string
		noCache      bool
		showProgress bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout <model>",
		Short: "Pack per-step parts lists and the bill of materials",
		Long: `Pack per-step parts lists (PLI) and optionally a bill of materials
(BOM) from an LDraw model.

The model's own directives drive the layout; flags override the packing
constraint, sort order, and renderer. Results are cached locally for
faster subsequent runs. A lpub.toml in the model's directory tree
supplies project defaults; flags win.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Model = args[0]
			return c.runLayout(cmd.Context(), opts, output, noCache, showProgress)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <model>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even on a cache hit")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "show a part-render progress bar")

	cmd.Flags().BoolVar(&opts.Bom, "bom", false, "build the bill of materials")
	cmd.Flags().IntVar(&opts.BomParts, "bom-parts", 0, "split the BOM across N occurrences")
	cmd.Flags().StringVar(&opts.Constrain, "constrain", "", "packing constraint override: area|square|width|height|cols")
	cmd.Flags().Float32Var(&opts.Magnitude, "magnitude", 0, "constraint magnitude for the override")
	cmd.Flags().StringVar(&opts.SortBy, "sort", "", "primary sort override: size|color|category|element")
	cmd.Flags().StringVar(&opts.Renderer, "renderer", "", "part renderer: native (default), ldview")
	cmd.Flags().Float32Var(&opts.Resolution, "resolution", 0, "dots per inch for length-valued directives")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail on the first malformed directive")
	cmd.Flags().BoolVar(&opts.Sheet, "sheet", false, "render a PNG sheet per layout")
	cmd.Flags().StringSliceVar(&opts.LibraryDirs, "library", nil, "LDraw parts library root (repeatable)")
	cmd.Flags().StringVar(&opts.CatalogDir, "catalog", "", "annotation/element catalog directory")
	cmd.Flags().StringVar(&opts.ControlFile, "control", "", "part orientation control file")

	return cmd
}

// runLayout merges project config, executes the pipeline, and writes
// output files.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache, showProgress bool) error {
	merged, err := c.loadProjectOptions(opts)
	if err != nil {
		return err
	}
	merged.Logger = c.Logger

	if merged.ImageDir == "" {
		if dir, err := imageDir(); err == nil {
			merged.ImageDir = dir
		}
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var result *pipeline.Result
	if showProgress {
		result, err = c.executeWithProgress(ctx, runner, merged)
	} else {
		result, err = c.executeWithSpinner(ctx, runner, merged)
	}
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(merged.Model, filepath.Ext(merged.Model))
		outputPath = base + ".layout.json"
	}

	data, err := json.MarshalIndent(result.Layouts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)

	if merged.Sheet {
		base := strings.TrimSuffix(outputPath, ".layout.json")
		for name, png := range result.Sheets {
			sheetPath := fmt.Sprintf("%s.%s.png", base, name)
			if err := os.WriteFile(sheetPath, png, 0o644); err != nil {
				return fmt.Errorf("write sheet %s: %w", sheetPath, err)
			}
			printFile(sheetPath)
		}
	}

	printStats(result.Stats.Parts, result.Stats.Steps, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Structure diagram", appName+" structure "+merged.Model)

	return nil
}

// executeWithSpinner runs the pipeline behind a terminal spinner.
func (c *CLI) executeWithSpinner(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	spinner := newSpinnerWithContext(ctx, "Packing parts lists...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return nil, err
	}
	spinner.Stop()
	return result, nil
}

// executeWithProgress runs the pipeline behind a bubbletea progress bar
// fed by the render hooks.
func (c *CLI) executeWithProgress(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	program := tea.NewProgram(newRenderProgressModel(), tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	observability.SetPipelineHooks(&progressHooks{program: program})
	defer observability.Reset()

	var (
		result  *pipeline.Result
		execErr error
	)
	go func() {
		result, execErr = runner.Execute(ctx, opts)
		program.Send(layoutDoneMsg{err: execErr})
	}()

	if _, err := program.Run(); err != nil && execErr == nil {
		return nil, err
	}
	if execErr != nil {
		printError("Layout failed")
		return nil, execErr
	}
	return result, nil
}
