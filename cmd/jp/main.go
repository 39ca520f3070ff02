package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-jmes/jmespath"
)

var (
	filePath           string
	printAST           bool
	disableVisitErrors bool
	verbose            bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jp <expression>",
		Short: "Evaluate a JMESPath expression against a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE:  runJP,
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read the input document from a file instead of stdin")
	cmd.Flags().BoolVar(&printAST, "ast", false, "print the parsed AST instead of evaluating it")
	cmd.Flags().BoolVar(&disableVisitErrors, "disable-visit-errors", false, "swallow evaluation-time errors and return null")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runJP(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	expression := args[0]

	if printAST {
		parser := jmespath.NewParser()
		ast, err := parser.Parse(expression)
		if err != nil {
			return fmt.Errorf("parsing expression: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), ast.String())
		return nil
	}

	input, err := readInput()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(input, &data); err != nil {
		return fmt.Errorf("decoding JSON input: %w", err)
	}

	runtime := jmespath.NewRuntime(jmespath.WithDisableVisitErrors(disableVisitErrors))
	log.Debug().Str("expression", expression).Msg("evaluating expression")
	result, err := runtime.Search(expression, data)
	if err != nil {
		return fmt.Errorf("evaluating expression: %w", err)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

func readInput() ([]byte, error) {
	if filePath != "" {
		return os.ReadFile(filePath)
	}
	return io.ReadAll(os.Stdin)
}
