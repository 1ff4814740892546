package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/token"
)

var (
	tokensShowPos    bool
	tokensOnlyErrors bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Nova source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensShowPos, "show-pos", false, "show token positions (line:column)")
	tokensCmd.Flags().BoolVar(&tokensOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	lx := lexer.New(filename, src)
	count, illegal := 0, 0
	for {
		tok := lx.NextToken()
		if tok.Type == token.EOF {
			break
		}
		count++
		if tok.Type == token.ILLEGAL {
			illegal++
		}
		if tokensOnlyErrors && tok.Type != token.ILLEGAL {
			continue
		}
		printToken(tok)
	}

	fmt.Printf("%s tokens, %s illegal, %s bytes\n",
		humanize.Comma(int64(count)), humanize.Comma(int64(illegal)), humanize.Comma(int64(len(src))))

	if illegal > 0 {
		return fmt.Errorf("found %d illegal token(s)", illegal)
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-14s] %q", tok.Type.String(), tok.Literal)
	if tokensShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
