package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	wcerrors "wordcounter/internal/errors"
	"wordcounter/internal/stats"
	"wordcounter/internal/version"
)

// newTestServer creates a stdin server over the real engine
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(version.Version, stats.NewEngine(nil), nil)
}

// runLines feeds input to a fresh server and returns the output lines
func runLines(t *testing.T, server *Server, input string) []string {
	t.Helper()

	var stdout bytes.Buffer
	server.SetStdin(strings.NewReader(input))
	server.SetStdout(&stdout)

	if err := server.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	out := strings.TrimSuffix(stdout.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func requestLine(t *testing.T, path string) string {
	t.Helper()
	data, err := json.Marshal(map[string]string{"file_path": path})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return string(data) + "\n"
}

func TestServer_CountsFile(t *testing.T) {
	path := writeTemp(t, "sample.txt", "a b\nc\n")

	lines := runLines(t, newTestServer(t), requestLine(t, path))

	if len(lines) != 1 {
		t.Fatalf("got %d response lines, want 1: %q", len(lines), lines)
	}
	want := `{"result":{"lines":2,"words":3,"characters":6}}`
	if lines[0] != want {
		t.Errorf("response = %s, want %s", lines[0], want)
	}
}

func TestServer_ErrorLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"invalid json", "not json\n", `{"error":"Invalid JSON input"}`},
		{"blank line", "\n", `{"error":"Invalid JSON input"}`},
		{"missing file_path", "{}\n", `{"error":"Missing file_path in request"}`},
		{"wrong field", `{"path": "a.txt"}` + "\n", `{"error":"Missing file_path in request"}`},
		{"non-string file_path", `{"file_path": 3}` + "\n", `{"error":"file_path must be a string"}`},
		{"missing file", `{"file_path": "missing.txt"}` + "\n", `{"error":"File 'missing.txt' not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := runLines(t, newTestServer(t), tt.input)
			if len(lines) != 1 {
				t.Fatalf("got %d response lines, want 1: %q", len(lines), lines)
			}
			if lines[0] != tt.want {
				t.Errorf("response = %s, want %s", lines[0], tt.want)
			}
		})
	}
}

func TestServer_ContinuesAfterErrors(t *testing.T) {
	path := writeTemp(t, "ok.txt", "one two three")

	input := "not json\n" +
		"{}\n" +
		`{"file_path": "missing.txt"}` + "\n" +
		requestLine(t, path)

	lines := runLines(t, newTestServer(t), input)

	if len(lines) != 4 {
		t.Fatalf("got %d response lines, want 4: %q", len(lines), lines)
	}

	var last Response
	if err := json.Unmarshal([]byte(lines[3]), &last); err != nil {
		t.Fatalf("last line is not JSON: %v", err)
	}
	if last.IsError() {
		t.Fatalf("last response should succeed, got error %q", last.Error)
	}
	if *last.Result != (stats.Result{Lines: 1, Words: 3, Characters: 13}) {
		t.Errorf("result = %+v", *last.Result)
	}
}

func TestServer_FinalLineWithoutNewline(t *testing.T) {
	path := writeTemp(t, "tail.txt", "x\n")

	input := strings.TrimSuffix(requestLine(t, path), "\n")
	lines := runLines(t, newTestServer(t), input)

	if len(lines) != 1 {
		t.Fatalf("got %d response lines, want 1", len(lines))
	}
	if !strings.HasPrefix(lines[0], `{"result":`) {
		t.Errorf("response = %s, want a result", lines[0])
	}
}

func TestServer_EmptyInput(t *testing.T) {
	lines := runLines(t, newTestServer(t), "")
	if len(lines) != 0 {
		t.Errorf("got %d response lines for empty input, want 0", len(lines))
	}
}

func TestServer_ForeignErrorUsesItsText(t *testing.T) {
	server := NewServer("test", failingCounter{err: errors.New("disk on fire")}, nil)

	lines := runLines(t, server, `{"file_path": "x"}`+"\n")
	if len(lines) != 1 || lines[0] != `{"error":"disk on fire"}` {
		t.Errorf("response = %q", lines)
	}
}

func TestServer_RespondsBeforeNextLine(t *testing.T) {
	path := writeTemp(t, "stream.txt", "hello world\n")

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	server := newTestServer(t)
	server.SetStdin(inR)
	server.SetStdout(outW)

	done := make(chan error, 1)
	go func() {
		done <- server.Start()
		outW.Close()
	}()

	responses := bufio.NewReader(outR)
	for i := 0; i < 2; i++ {
		if _, err := io.WriteString(inW, requestLine(t, path)); err != nil {
			t.Fatalf("write request: %v", err)
		}
		line, err := responses.ReadString('\n')
		if err != nil {
			t.Fatalf("read response %d: %v", i, err)
		}
		if !strings.Contains(line, `"words":2`) {
			t.Errorf("response %d = %s", i, line)
		}
	}

	inW.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after EOF")
	}
}

func TestServer_WriteFailure(t *testing.T) {
	server := newTestServer(t)
	server.SetStdin(strings.NewReader("not json\n"))
	server.SetStdout(failingWriter{})

	if err := server.Start(); err == nil {
		t.Error("Start() should return the stdout write error")
	}
}

type failingCounter struct{ err error }

func (f failingCounter) Count(string) (stats.Result, error) {
	return stats.Result{}, f.err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestResponse_IsError(t *testing.T) {
	if !NewErrorResponse(wcerrors.MsgInvalidJSON).IsError() {
		t.Error("error response should report IsError")
	}
	if NewResultResponse(stats.Result{}).IsError() {
		t.Error("result response should not report IsError")
	}
}
