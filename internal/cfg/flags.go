package cfg

import (
	"archivarr/internal/domain/consts"
	"archivarr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags sets the root command flags and binds them to Viper.
func initProgramFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debug level (0-5)")
	if err := viper.BindPFlag(keys.DebugLevel, cmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}

	cmd.Flags().String(keys.DirectiveFile, consts.DirectiveFileName, "Path to the archive directive file")
	if err := viper.BindPFlag(keys.DirectiveFile, cmd.Flags().Lookup(keys.DirectiveFile)); err != nil {
		return err
	}

	cmd.Flags().Bool(keys.SkipProbe, false, "Skip the preflight page probe for listing URLs")
	if err := viper.BindPFlag(keys.SkipProbe, cmd.Flags().Lookup(keys.SkipProbe)); err != nil {
		return err
	}

	cmd.Flags().String(keys.CookieFile, "", "Override the cookie file handed to the engine")
	if err := viper.BindPFlag(keys.CookieFile, cmd.Flags().Lookup(keys.CookieFile)); err != nil {
		return err
	}

	cmd.Flags().String(keys.ArchiveFile, "", "Override the download archive log path")
	return viper.BindPFlag(keys.ArchiveFile, cmd.Flags().Lookup(keys.ArchiveFile))
}
