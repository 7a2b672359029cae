package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "composer",
	Short: "Composer event model tools",
	Long:  `Tools around the composer event model: export a progression, serve the transform API, listen to live input.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
