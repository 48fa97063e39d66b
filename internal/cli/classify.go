package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessro/qrocodile/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [token...]",
	Short: "Show how card tokens are interpreted",
	Long: `Print the command each token maps to without contacting Sonos.

Tokens are read from the arguments, or one per line from stdin when none
are given.

Examples:
  qrocodile classify spotify:album:1DFixLWuPkv3KT3TnV35m3
  qrocodile classify cmd:buildqueue changezone:Kitchen
  qrocodile classify < cards.txt`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

type classification struct {
	Token   string `json:"token"`
	Kind    string `json:"kind"`
	Command string `json:"command"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	tokens := args
	if len(tokens) == 0 {
		var err error
		tokens, err = readTokens(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	results := make([]classification, 0, len(tokens))
	for _, token := range tokens {
		c := classify.Classify(token)
		results = append(results, classification{
			Token:   strings.TrimSpace(token),
			Kind:    string(c.Kind()),
			Command: c.String(),
		})
	}

	if JSONOutput() {
		return writeJSON(os.Stdout, results)
	}

	table := NewTable("TOKEN", "KIND", "COMMAND")
	for _, r := range results {
		table.Row(TruncateString(r.Token, 60), r.Kind, r.Command)
	}
	table.Flush()
	return nil
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			tokens = append(tokens, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tokens: %w", err)
	}
	return tokens, nil
}
