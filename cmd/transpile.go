package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gscript-labs/ts2gs/transpiler"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"github.com/spf13/cobra"
)

const (
	defaultOptionsFile = ""
	defaultDiffFile    = ""
	defaultOutputDir   = ""
)

var (
	optionsFile string
	diffFile    string
	outputDir   string
	toStdout    bool
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [files]",
	Short: "transpile TypeScript files",
	Long:  "transpile TypeScript files into .gs files the Apps Script sandbox accepts",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Transpile(args)
	},
}

// loadOptions reads caller overrides from the --options YAML file.
// A missing flag means default options.
func loadOptions(path string) (*transpiler.Options, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}
	return transpiler.ParseOptionsYAML(data)
}

// outputPath maps an input file to its .gs sibling, or into the
// --out directory when one is set.
func outputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".gs"
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}

func validateOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output directory does not exist: %v", err)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %q is not a directory", dir)
	}
	return nil
}

func Transpile(files []string) {
	if err := validateOutputDir(outputDir); err != nil {
		cobra.CheckErr(err)
	}

	opts, err := loadOptions(optionsFile)
	if err != nil {
		cobra.CheckErr(err)
	}

	var patches strings.Builder
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("reading %q: %v", file, err))
		}

		output, err := transpiler.Transform(string(source), opts)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("%s: %v", file, err))
		}

		switch {
		case toStdout:
			fmt.Print(output)
		case diffFile != "":
			target := outputPath(file)
			previous, err := os.ReadFile(target)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				cobra.CheckErr(err)
			}
			patches.WriteString(godiffpatch.GeneratePatch(target, string(previous), output))
		default:
			target := outputPath(file)
			if err := os.WriteFile(target, []byte(output), 0644); err != nil {
				cobra.CheckErr(err)
			}
			log.Printf("wrote %s", target)
		}
	}

	if diffFile != "" && !toStdout {
		if err := os.WriteFile(diffFile, []byte(patches.String()), 0644); err != nil {
			cobra.CheckErr(err)
		}
		log.Printf("wrote %s", diffFile)
	}
}

func init() {
	transpileCmd.Flags().StringVar(&optionsFile, "options", defaultOptionsFile, "YAML file with caller option overrides")
	transpileCmd.Flags().StringVar(&diffFile, "diff", defaultDiffFile, "write a unified diff against existing output instead of replacing it")
	transpileCmd.Flags().StringVar(&outputDir, "out", defaultOutputDir, "directory for generated .gs files")
	transpileCmd.Flags().BoolVar(&toStdout, "stdout", false, "print generated code to stdout")
	cobra.MarkFlagFilename(transpileCmd.Flags(), "options", "yaml", "yml") // for file completion

	rootCmd.AddCommand(transpileCmd)
}
