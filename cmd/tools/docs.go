package tools

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/Manu343726/x86regs/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() string{
	"registers": func() string { return registers.Registers.DocString() },
	"metaclasses": func() string {
		return utils.FormatSlice(utils.Map(registers.RegisterMetaClasses, (*registers.RegisterMetaClass).String), "\n")
	},
}

func moduleNames() []string {
	names := utils.Keys(supportedModules)
	sort.Strings(names)
	return names
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show register catalog documentation",
	Long: `Dumps the documentation of the specified module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(moduleNames(), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: moduleNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, _ := cmd.Flags().GetString("output")

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), supportedModules[args[0]]())
			return nil
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		defer file.Close()

		_, err = fmt.Fprintln(file, supportedModules[args[0]]())
		return err
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
