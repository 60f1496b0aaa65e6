package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/x86regs/cmd/regs"
	"github.com/Manu343726/x86regs/cmd/tools"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "x86regs",
	Short: "Inspect the x86 register catalog",
	Long: `x86regs answers register metadata queries over the x86 register catalog: the class,
width and name of every register identifier, and which register sits at a given slot of a class.

The catalog is the same one used by the decoder and the disassembly formatter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool("color") {
			color.NoColor = true
		}

		logger, err := newLogger(viper.GetString("log.level"), viper.GetString("log.file"))
		if err != nil {
			return err
		}

		slog.SetDefault(logger)
		slog.Debug("configuration loaded", "config", viper.ConfigFileUsed(), "command", cmd.Name())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	closeLogFile()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.x86regs.yaml)")
	RootCmd.PersistentFlags().Bool("color", true, "colorize output")
	RootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file")

	cobra.CheckErr(viper.BindPFlag("color", RootCmd.PersistentFlags().Lookup("color")))
	cobra.CheckErr(viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", RootCmd.PersistentFlags().Lookup("log-file")))

	RootCmd.AddCommand(tools.ToolsCmd)
	RootCmd.AddCommand(regs.Commands()...)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".x86regs" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".x86regs")
	}

	viper.SetEnvPrefix("X86REGS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
