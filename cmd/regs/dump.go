package regs

import (
	"fmt"

	"github.com/Manu343726/x86regs/pkg/hw/x86/format"
	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the whole register catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat := viper.GetString("format"); outputFormat {
		case "yaml":
			return format.WriteYAML(cmd.OutOrStdout(), registers.Registers)
		case "text":
			_, err := fmt.Fprint(cmd.OutOrStdout(), registers.Registers.DocString())
			return err
		default:
			return fmt.Errorf("unsupported format '%v', expected yaml or text", outputFormat)
		}
	},
}

func init() {
	dumpCmd.Flags().StringP("format", "f", "text", "output format (text, yaml)")
	cobra.CheckErr(viper.BindPFlag("format", dumpCmd.Flags().Lookup("format")))
}
