package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rubywriter <source-file> <instruction>",
	Short: "rubywriter rewrites a Ruby source file and writes it back as canonical Ruby",
	Long: "rubywriter parses a Ruby source file, applies one instruction to its syntax tree and writes the result\n" +
		"as canonical Ruby source, a unified diff, or a map of the constants it assigns.\n\n" +
		"Instructions: " + instructionList(),
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Run(cmd, args[0], args[1])
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
