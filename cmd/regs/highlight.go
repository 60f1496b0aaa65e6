package regs

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Manu343726/x86regs/pkg/hw/x86/format"
	"github.com/spf13/cobra"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [assembly]",
	Short: "Highlight the registers of Intel syntax assembly",
	Long: `Prints the given assembly line with mnemonics, registers and numbers highlighted.
Registers are colored by family. Without arguments the lines are read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			fmt.Fprintln(out, format.HighlightAssembly(strings.Join(args, " ")))
			return nil
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())

		for scanner.Scan() {
			fmt.Fprintln(out, format.HighlightAssembly(scanner.Text()))
		}

		return scanner.Err()
	},
}
