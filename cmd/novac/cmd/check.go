package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/errors"
	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/parser"
	"github.com/novalang/nova/internal/semantic"
	"github.com/novalang/nova/pkg/registry"
)

var checkManifestPath string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run the full lex/parse/analyze pipeline and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkManifestPath, "registry", "", "path to a YAML TypeRegistry manifest (defaults to the built-in one)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	color := errors.AutoColor(os.Stderr.Fd())

	lx := lexer.New(filename, src)
	p := parser.New(lx, filename, src)
	result := p.ParseTolerant()

	if len(p.Errors()) > 0 {
		compilerErrors := make([]*errors.CompilerError, 0, len(p.Errors()))
		for _, perr := range p.Errors() {
			compilerErrors = append(compilerErrors, errors.New(perr.Token.Pos, perr.Message, src, filename))
		}
		fmt.Fprintln(os.Stderr, errors.FormatErrors(compilerErrors, color))
	}

	reg, err := loadRegistry(checkManifestPath)
	if err != nil {
		return err
	}

	analysis := semantic.NewAnalyzer(reg).Analyze(result.Program, result.TopLevelStatements)

	errorCount := 0
	for _, d := range analysis.Diagnostics {
		fmt.Println(d.String())
		if d.Severity == diag.Error {
			errorCount++
		}
	}

	fmt.Printf("%s errors, %s bytes analyzed\n", humanize.Comma(int64(errorCount+len(p.Errors()))), humanize.Comma(int64(len(src))))

	if errorCount > 0 || len(p.Errors()) > 0 {
		return fmt.Errorf("check failed")
	}
	return nil
}

func loadRegistry(path string) (registry.TypeRegistry, error) {
	if path == "" {
		return registry.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry manifest %s: %w", path, err)
	}
	return registry.LoadYAML(data)
}
