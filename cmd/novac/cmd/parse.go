package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/novalang/nova/internal/errors"
	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/parser"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Nova source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "print the whole program (package and imports too), not only its declarations")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	lx := lexer.New(filename, src)
	p := parser.New(lx, filename, src)
	result := p.ParseTolerant()

	if len(p.Errors()) > 0 {
		color := errors.AutoColor(os.Stderr.Fd())
		compilerErrors := make([]*errors.CompilerError, 0, len(p.Errors()))
		for _, perr := range p.Errors() {
			ce := errors.New(perr.Token.Pos, perr.Message, src, filename)
			compilerErrors = append(compilerErrors, ce)
		}
		fmt.Fprintln(os.Stderr, errors.FormatErrors(compilerErrors, color))
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if parseDumpAST {
		fmt.Println(result.Program.String())
	} else {
		for _, decl := range result.Program.Declarations {
			fmt.Println(decl.String())
		}
	}

	fmt.Printf("%s declarations, %s top-level statements, %s bytes parsed\n",
		humanize.Comma(int64(len(result.Program.Declarations))),
		humanize.Comma(int64(len(result.TopLevelStatements))),
		humanize.Comma(int64(len(src))))
	return nil
}
