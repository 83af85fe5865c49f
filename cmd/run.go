package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rubywriter/rubywriter/cli"
	"github.com/rubywriter/rubywriter/internal/comment"
	"github.com/rubywriter/rubywriter/internal/util"
	"github.com/rubywriter/rubywriter/transform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultConfigPath     = ""
	defaultOutputFilePath = ""
	defaultDebug          = false
)

// options are the command line flags. Flags that were set override the
// values of the configuration file.
type options struct {
	configPath     string
	outputFile     string
	diff           bool
	debug          bool
	format         string
	documentation  bool
	signaturesOnly bool
	marker         string
}

var flags options

func instructionList() string {
	names := make([]string, 0, len(transform.Instructions()))
	for _, i := range transform.Instructions() {
		names = append(names, string(i))
	}
	return strings.Join(names, ", ")
}

// validateOutputFile checks that the custom output path is valid
func validateOutputFile(path string, diff bool) error {
	if diff && filepath.Ext(path) != ".diff" {
		return errors.New("output file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}

	return nil
}

// loadConfig reads the configuration file and applies the flags that were
// set on cmd.
func loadConfig(cmd *cobra.Command, opts options) (*cli.CLIConfig, error) {
	cfg, err := cli.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = opts.format
	}
	if changed("documentation") {
		cfg.Documentation = opts.documentation
	}
	if changed("signatures-only") {
		cfg.SignaturesOnly = opts.signaturesOnly
	}
	if changed("marker") {
		cfg.Marker = opts.marker
	}
	return cfg, cfg.Validate()
}

// Run applies instruction to the Ruby file at sourceFile. An unknown
// instruction prints a usage hint and returns without error.
func Run(cmd *cobra.Command, sourceFile, instruction string) {
	if err := run(cmd, cmd.OutOrStdout(), sourceFile, instruction, flags); err != nil {
		cobra.CheckErr(err)
	}
	comment.WriteAll()
}

func run(cmd *cobra.Command, stdout io.Writer, sourceFile, instruction string, opts options) error {
	inst, err := transform.ParseInstruction(instruction)
	if err != nil {
		fmt.Fprintf(stdout, "unknown instruction %q, expected one of: %s\n", instruction, instructionList())
		return nil
	}

	if opts.outputFile != "" {
		if err := validateOutputFile(opts.outputFile, opts.diff); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	manager, err := transform.Load(cmd.Context(), sourceFile, cfg.TransformConfig())
	if err != nil {
		return err
	}
	if opts.debug {
		log.Printf("parsed %s:\n%s", sourceFile, util.DebugPrint(manager.Root()))
	}

	if err := manager.Apply(inst); err != nil {
		return err
	}
	if opts.debug && inst != transform.ExploreConstants {
		log.Printf("after %s:\n%s", inst, util.DebugPrint(manager.Root()))
	}

	switch {
	case opts.outputFile != "":
		return manager.WriteFile(opts.outputFile, opts.diff)
	case opts.diff:
		return manager.WriteDiff(stdout)
	default:
		return manager.Render(stdout)
	}
}

func registerFlags(f *pflag.FlagSet, opts *options) {
	f.StringVar(&opts.configPath, "config", defaultConfigPath, "path to a YAML configuration file")
	f.StringVarP(&opts.outputFile, "output", "o", defaultOutputFilePath, "write the result to this file instead of stdout")
	f.BoolVar(&opts.diff, "diff", false, "write a unified diff against the source file")
	f.BoolVar(&opts.debug, "debug", defaultDebug, "log the syntax tree before and after the instruction")
	f.StringVar(&opts.format, "format", string(transform.FormatDebug), "constant map format: debug, yaml or go")
	f.BoolVar(&opts.documentation, "documentation", false, "keep documentation comments of definitions")
	f.BoolVar(&opts.signaturesOnly, "signatures-only", false, "omit method bodies")
	f.StringVar(&opts.marker, "marker", transform.DefaultMarker, "string inserted by insert_marker")
	cobra.MarkFlagFilename(f, "config", "yaml", "yml") // for file completion
	cobra.MarkFlagFilename(f, "output")
}

func init() {
	registerFlags(rootCmd.Flags(), &flags)
}
