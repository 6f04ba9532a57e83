package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "linetrans",
	Short: "LINE translation bot for English, Thai and Myanmar",
	Long: `linetrans is a LINE webhook bot that translates chat messages.
It detects whether a message is English, Thai or Myanmar and replies
with translations into the other two languages. 'hello' and 'help'
are answered directly without calling the translation service.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load a .env file if one exists so LINETRANS_* variables can
		// live next to the binary during development.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".linetrans.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
