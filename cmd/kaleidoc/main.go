package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaleido-lang/kaleidoc/pkg/ast"
	"github.com/kaleido-lang/kaleidoc/pkg/config"
	"github.com/kaleido-lang/kaleidoc/pkg/lexer"
	"github.com/kaleido-lang/kaleidoc/pkg/parser"
)

var version = "0.1.0"

// Debug flags for dumping front-end output
var (
	dTokens bool
	dParse  bool
)

// Parser options
var (
	opConfigPath string
	verbose      bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Accept compiler-style single-dash flags like -dparse
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists all debug flags that should accept single-dash style
var debugFlagNames = []string{"dtokens", "dparse"}

// normalizeFlags converts single-dash flags like -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kaleidoc [file]",
		Short: "kaleidoc is the front end of the kaleido expression language",
		Long: `kaleidoc parses kaleido source files into an abstract syntax
tree for the downstream code generator. Its dump flags expose the
token stream and the parsed AST for inspection.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			filename := args[0]

			log := newLogger(errOut)

			// Handle -dtokens: dump the token stream
			if dTokens {
				return doTokens(filename, out, errOut)
			}

			// Handle -dparse: parse and dump the AST
			if dParse {
				return doParse(filename, out, errOut)
			}

			program, err := parseFile(filename, errOut)
			if err != nil {
				return err
			}
			log.Debug("parse complete", "file", filename, "declarations", len(program.Decls))
			fmt.Fprintf(errOut, "kaleidoc: parsed %s (%d declarations)\n", filename, len(program.Decls))
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Add debug flags
	rootCmd.Flags().BoolVarP(&dTokens, "dtokens", "", false, "Dump the token stream")
	rootCmd.Flags().BoolVarP(&dParse, "dparse", "", false, "Dump after parsing")

	// Add parser flags
	rootCmd.Flags().StringVar(&opConfigPath, "opconfig", "", "YAML file with operator precedences and limits")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

// newLogger builds the CLI logger; debug records are discarded unless
// --verbose is set
func newLogger(errOut io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves the parser configuration from --opconfig or the
// built-in defaults
func loadConfig() (*config.Config, error) {
	if opConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(opConfigPath)
}

// newParser builds a parser for source text using the active configuration
func newParser(content string, cfg *config.Config) (*parser.Parser, error) {
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	p := parser.NewWithTable(lexer.New(content), table)
	p.SetMaxDepth(cfg.MaxNestingDepth)
	return p, nil
}

// parseFile reads and parses a source file, returning the AST
func parseFile(filename string, errOut io.Writer) (*ast.Program, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "kaleidoc: error reading %s: %v\n", filename, err)
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(errOut, "kaleidoc: %v\n", err)
		return nil, err
	}

	p, err := newParser(string(content), cfg)
	if err != nil {
		fmt.Fprintf(errOut, "kaleidoc: %v\n", err)
		return nil, err
	}

	program, err := p.ParseProgram()
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", filename, err)
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return program, nil
}

// doTokens lexes the file and writes one token per line
func doTokens(filename string, out, errOut io.Writer) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "kaleidoc: error reading %s: %v\n", filename, err)
		return err
	}

	l := lexer.New(string(content))
	for {
		tok := l.NextToken()
		fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
		if tok.Type == lexer.TokenEOF {
			return nil
		}
	}
}

// doParse parses the file and writes the AST to a .parsed.k file
func doParse(filename string, out, errOut io.Writer) error {
	program, err := parseFile(filename, errOut)
	if err != nil {
		return err
	}

	// Compute output filename: input.k -> input.parsed.k
	outputFilename := parsedOutputFilename(filename)

	outFile, err := os.Create(outputFilename)
	if err != nil {
		fmt.Fprintf(errOut, "kaleidoc: error creating %s: %v\n", outputFilename, err)
		return err
	}
	defer outFile.Close()

	// Print the AST to the file
	printer := ast.NewPrinter(outFile)
	printer.PrintProgram(program)

	// Also print to stdout for convenience
	printer = ast.NewPrinter(out)
	printer.PrintProgram(program)

	return nil
}

// parsedOutputFilename returns the output filename for -dparse
// input.k -> input.parsed.k
func parsedOutputFilename(filename string) string {
	ext := ".k"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".parsed.k"
	}
	return filename + ".parsed.k"
}
