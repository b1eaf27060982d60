package target

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/luciernaga/luciernaga/pkg/codegen/target"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the instruction table of a target",
	Long: `Dumps the instruction descriptor table of a target: mnemonic, operand count
and result operand position of every opcode.

By default the built-in sol64 demo target is dumped. Use --spec to load a
target description from a YAML target spec file instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		specFile, _ := cmd.Flags().GetString("spec")

		description := target.Sol64()
		if specFile != "" {
			loaded, err := target.LoadDescriptionFile(specFile)
			if err != nil {
				slog.Error("failed to load target spec", "path", specFile, "error", err)
				os.Exit(1)
			}
			description = loaded
		}

		color.New(color.FgCyan, color.Bold).Printf("Instruction table of target '%v'\n\n", description.Name)
		fmt.Println(description.DocString())
	},
}

func init() {
	TargetCmd.AddCommand(docsCmd)
	docsCmd.Flags().String("spec", "", "YAML target spec file. If not specified, the built-in sol64 target is dumped.")
}
