package regs

import (
	"fmt"
	"log/slog"

	"github.com/Manu343726/x86regs/pkg/hw/x86/format"
	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/Manu343726/x86regs/pkg/utils"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show register...",
	Short: "Show the metadata of registers given by name or id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		for _, arg := range args {
			reg, err := parseRegister(arg)
			if err != nil {
				return err
			}

			slog.Debug("resolved register", "input", arg, "id", uint8(reg))

			descriptor, err := reg.Descriptor()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, format.RegisterColor(reg).Sprint(reg))
			fmt.Fprintf(out, "  id:       %v\n", uint8(reg))
			fmt.Fprintf(out, "  class:    %v (%v)\n", reg.Class(), descriptor.Class.Description)
			fmt.Fprintf(out, "  size:     %v\n", reg.Size())
			fmt.Fprintf(out, "  slot:     %v\n", descriptor.Index)
			fmt.Fprintf(out, "  encoding: %v\n", utils.FormatUintBinary(reg.Encode(), registers.Registers.RegisterBits()))

			if descriptor.Description != "" {
				fmt.Fprintf(out, "  about:    %v\n", descriptor.Description)
			}

			for _, metaclass := range registers.RegisterMetaClasses {
				if metaclass.Contains(reg) {
					fmt.Fprintf(out, "  group:    %v\n", metaclass.Name)
				}
			}
		}

		return nil
	},
}
