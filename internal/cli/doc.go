package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trevorsandy/lpub3dNext/pkg/meta"
)

// docCommand creates the doc command for emitting the directive
// grammar.
func (c *CLI) docCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Print the directive grammar",
		Long: `Print one grammar line per directive the interpreter understands,
in sorted keyword order. Useful as a quick reference when hand-editing
models.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(meta.New().Doc(nil), "\n") + "\n"
			if output == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the grammar to a file")

	return cmd
}
