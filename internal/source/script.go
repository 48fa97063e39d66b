package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Script replays tokens from a text file, one per line, pausing between
// tokens the way a person moving from card to card would.
type Script struct {
	path   string
	tokens []string
	delay  time.Duration
	pos    int
}

// OpenScript reads the script at path. Text after '#' is a comment and
// blank lines are ignored.
func OpenScript(path string, delay time.Duration) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	tokens, err := parseScript(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}

	return &Script{path: path, tokens: tokens, delay: delay}, nil
}

// Next returns the next token, waiting out the delay before every token
// but the first.
func (s *Script) Next(ctx context.Context) (string, error) {
	if s.pos >= len(s.tokens) {
		return "", io.EOF
	}

	if s.pos > 0 && s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	token := s.tokens[s.pos]
	s.pos++
	return token, nil
}

// Len returns the number of tokens in the script.
func (s *Script) Len() int {
	return len(s.tokens)
}

// Close is a no-op; the file is read in full when opened.
func (s *Script) Close() error {
	s.pos = len(s.tokens)
	return nil
}

func parseScript(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		if line = strings.TrimSpace(line); line != "" {
			tokens = append(tokens, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
