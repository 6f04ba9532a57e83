package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thiha-ko/linetrans/internal/detect"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect the language of a piece of text",
	Long:  `Runs the bot's language heuristic on the given text and prints the detected language (en, th or my). Useful for checking how a message would be routed.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		lang := detect.Detect(text)
		fmt.Printf("%s (targets: %v)\n", lang, lang.Targets())
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
