package regs

import (
	"fmt"
	"strconv"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup class slot",
	Short: "Print the register at the given slot of a register class",
	Long: `Prints the register at the given zero based slot of a register class, the way a decoder
maps (class, slot) pairs taken from instruction encodings. Out of range slots print "none".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		class, err := parseClass(args[0])
		if err != nil {
			return err
		}

		slot, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid slot '%v': %w", args[1], err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), registers.GetById(class.Class, slot))
		return nil
	},
}
