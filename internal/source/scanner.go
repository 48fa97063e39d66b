package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"

	qerrors "github.com/tessro/qrocodile/internal/errors"
)

// Scanner reads decoded frames from a barcode reader subprocess such as
// zbarcam. Each output line carries a fixed-width symbology prefix
// ("QR-Code:") ahead of the payload.
type Scanner struct {
	cmd         *exec.Cmd
	cancel      context.CancelFunc
	prefixWidth int
	logger      *zap.Logger

	lines chan string
	stop  chan struct{}
	done  chan struct{}
	err   error

	closeOnce sync.Once
	closeErr  error
}

// StartScanner launches binary with args and begins reading its output.
func StartScanner(binary string, args []string, prefixWidth int, logger *zap.Logger) (*Scanner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("%w: start %s: %v", qerrors.ErrScannerUnavailable, binary, err)
	}

	s := &Scanner{
		cmd:         cmd,
		cancel:      cancel,
		prefixWidth: prefixWidth,
		logger:      logger,
		lines:       make(chan string),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	go s.read(stdout)

	logger.Info("scanner started", zap.String("command", binary), zap.Strings("args", args))
	return s, nil
}

func (s *Scanner) read(r io.Reader) {
	defer close(s.done)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		token, ok := parseFrame(scanner.Text(), s.prefixWidth)
		if !ok {
			continue
		}
		select {
		case s.lines <- token:
		case <-s.stop:
			return
		}
	}
	s.err = scanner.Err()
}

// Next returns the next decoded token. It returns io.EOF when the
// subprocess exits.
func (s *Scanner) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case token := <-s.lines:
		return token, nil
	case <-s.done:
		if s.err != nil {
			return "", fmt.Errorf("scan output: %w", s.err)
		}
		return "", io.EOF
	}
}

// Close stops the subprocess and waits for it to exit.
func (s *Scanner) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.cancel()
		<-s.done
		err := s.cmd.Wait()
		// A killed or already-exited reader is the normal way to stop.
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) && !errors.Is(err, context.Canceled) {
			s.closeErr = fmt.Errorf("wait scanner: %w", err)
		}
		s.logger.Info("scanner stopped")
	})
	return s.closeErr
}

// parseFrame strips the symbology prefix and trailing whitespace from a
// scanner line. Lines with no payload are dropped.
func parseFrame(line string, prefixWidth int) (string, bool) {
	if prefixWidth > 0 {
		if len(line) <= prefixWidth {
			return "", false
		}
		line = line[prefixWidth:]
	}
	token := strings.TrimRightFunc(line, unicode.IsSpace)
	if strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}
