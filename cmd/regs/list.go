package regs

import (
	"log/slog"

	"github.com/Manu343726/x86regs/pkg/hw/x86/format"
	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/Manu343726/x86regs/pkg/utils"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [class...]",
	Short: "List registers, optionally only the ones of the given classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		classes := registers.Registers.AllClasses()

		if len(args) > 0 {
			classes = nil

			for _, arg := range args {
				class, err := parseClass(arg)
				if err != nil {
					return err
				}

				classes = append(classes, class)
			}
		}

		regs := utils.ConcatMap(classes, format.ClassRegisters)
		slog.Debug("listing registers", "classes", len(classes), "registers", len(regs))

		return format.WriteRegisterTable(cmd.OutOrStdout(), regs)
	},
}
