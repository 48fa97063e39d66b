package source

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	qerrors "github.com/tessro/qrocodile/internal/errors"
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		width  int
		want   string
		wantOK bool
	}{
		{"qr prefix", "QR-Code:spotify:track:abc", 8, "spotify:track:abc", true},
		{"trailing whitespace", "QR-Code:cmd:next  \r", 8, "cmd:next", true},
		{"prefix only", "QR-Code:", 8, "", false},
		{"blank payload", "QR-Code:   ", 8, "", false},
		{"short line", "QR", 8, "", false},
		{"no prefix", "lib:abc", 0, "lib:abc", true},
		{"keeps inner spaces", "QR-Code:changezone:Living Room", 8, "changezone:Living Room", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseFrame(tt.line, tt.width)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseFrame(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	input := `# morning routine
cmd:buildqueue
spotify:track:abc   # first song

spotify:track:xyz
   # indented comment
changezone:Kitchen
`
	got, err := parseScript(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}

	want := []string{"cmd:buildqueue", "spotify:track:abc", "spotify:track:xyz", "changezone:Kitchen"}
	if len(got) != len(want) {
		t.Fatalf("parseScript() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debug.txt")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func drain(t *testing.T, src Source) []string {
	t.Helper()
	var tokens []string
	for {
		token, err := src.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return tokens
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		tokens = append(tokens, token)
	}
}

func TestScriptReplay(t *testing.T) {
	path := writeScript(t, "cmd:next\n\nlib:abc # hash\n")

	script, err := OpenScript(path, time.Millisecond)
	if err != nil {
		t.Fatalf("OpenScript() error = %v", err)
	}
	defer script.Close()

	if script.Len() != 2 {
		t.Errorf("Len() = %d, want 2", script.Len())
	}
	got := drain(t, script)
	if strings.Join(got, ",") != "cmd:next,lib:abc" {
		t.Errorf("tokens = %v", got)
	}

	// Exhausted sources keep returning EOF.
	if _, err := script.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after end error = %v, want io.EOF", err)
	}
}

func TestScriptDelayHonorsContext(t *testing.T) {
	path := writeScript(t, "cmd:next\ncmd:previous\n")

	script, err := OpenScript(path, time.Hour)
	if err != nil {
		t.Fatalf("OpenScript() error = %v", err)
	}

	if _, err := script.Next(context.Background()); err != nil {
		t.Fatalf("first Next() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := script.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Next() error = %v, want deadline exceeded", err)
	}
}

func TestOpenScriptMissing(t *testing.T) {
	if _, err := OpenScript(filepath.Join(t.TempDir(), "nope.txt"), 0); err == nil {
		t.Error("OpenScript() error = nil, want error")
	}
}

func TestScannerReadsSubprocess(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	args := []string{"-c", `printf 'QR-Code:spotify:track:abc\nQR-Code:\nQR-Code:cmd:next \n'`}
	scanner, err := StartScanner(sh, args, 8, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("StartScanner() error = %v", err)
	}
	defer scanner.Close()

	got := drain(t, scanner)
	if strings.Join(got, ",") != "spotify:track:abc,cmd:next" {
		t.Errorf("tokens = %v", got)
	}
}

func TestScannerCloseStopsProcess(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	scanner, err := StartScanner(sh, []string{"-c", "exec sleep 60"}, 8, nil)
	if err != nil {
		t.Fatalf("StartScanner() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- scanner.Close() }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Close() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Close() did not stop the subprocess")
	}

	if err := scanner.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestStartScannerMissingBinary(t *testing.T) {
	_, err := StartScanner(filepath.Join(t.TempDir(), "zbarcam"), nil, 8, nil)
	if !errors.Is(err, qerrors.ErrScannerUnavailable) {
		t.Errorf("StartScanner() error = %v, want ErrScannerUnavailable", err)
	}
}
