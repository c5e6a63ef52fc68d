package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ts2gs",
	Short: "ts2gs converts TypeScript source files into Apps Script compatible files",
	Long:  "ts2gs converts TypeScript source files into Apps Script compatible files",
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
