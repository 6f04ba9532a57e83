package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thiha-ko/linetrans/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long:  `Writes a .linetrans.yml with default values. Fill in channel_access_token, channel_secret and translate_api_key before running serve, or supply them as LINETRANS_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists", cfgFile)
		}
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
