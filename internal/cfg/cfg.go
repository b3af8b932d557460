// Package cfg provides configuration and command-line interface setup for
// Archivarr.
package cfg

import (
	"archivarr/internal/domain/keys"
	"archivarr/internal/repo"
	"archivarr/internal/utils/logging"
	"archivarr/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "archivarr",
	Short: "Archivarr downloads and archives audio from a directive file.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Level = validation.ValidateDebugLevel(viper.GetInt(keys.DebugLevel))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil // Stop further execution if help is invoked
		}
		viper.Set(keys.Execute, true)
		return nil
	},
}

// InitCommands initializes all commands and their flags.
func InitCommands(rs *repo.RunStore) error {
	if err := initProgramFlags(rootCmd); err != nil {
		return err
	}

	rootCmd.AddCommand(initHistoryCmd(rs))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
