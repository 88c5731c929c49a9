// Package stats computes line, word and character counts for text files.
package stats

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	wcerrors "wordcounter/internal/errors"
	"wordcounter/internal/slogutil"
)

// Result holds the counts for one file.
type Result struct {
	Lines      int `json:"lines"`
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// Counter is implemented by anything that can count a file by path.
type Counter interface {
	Count(path string) (Result, error)
}

// Engine counts files on the local filesystem. It keeps no per-call state
// and is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a stats engine. A nil logger discards output.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}
	return &Engine{logger: logger}
}

// Count reads the file at path as UTF-8 text and returns its counts.
//
// Errors are *wcerrors.WcError with code NotFound, IOError or DecodeError.
func (e *Engine) Count(path string) (Result, error) {
	text, err := readText(path)
	if err != nil {
		e.logger.Debug("Count failed",
			"path", path,
			"code", string(wcerrors.CodeOf(err)),
			"error", err.Error(),
		)
		return Result{}, err
	}

	result := CountText(text)
	e.logger.Debug("Counted file",
		"path", path,
		"lines", result.Lines,
		"words", result.Words,
		"characters", result.Characters,
	)
	return result, nil
}

// readText returns the full decoded content of path.
func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", wcerrors.NewNotFoundError(path, err)
		}
		return "", wcerrors.NewIOError(err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", wcerrors.NewDecodeError(err)
		}
		return "", wcerrors.NewIOError(err)
	}

	return string(data), nil
}

// CountText computes the counts for already decoded text. Line endings are
// translated first (\r\n and lone \r become \n), so characters are counted
// the way a text-mode read sees them.
func CountText(text string) Result {
	text = normalizeNewlines(text)
	return Result{
		Lines:      countLines(text),
		Words:      countWords(text),
		Characters: utf8.RuneCountInString(text),
	}
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// countLines counts segments between line boundaries. A trailing boundary
// does not open a new segment. s must already have its newlines normalized;
// a raw \r\n pair would count as two boundaries.
func countLines(s string) int {
	lines := 0
	open := false
	for _, r := range s {
		if isLineBoundary(r) {
			lines++
			open = false
			continue
		}
		open = true
	}
	if open {
		lines++
	}
	return lines
}

// countWords counts maximal runs of non-whitespace runes.
func countWords(s string) int {
	words := 0
	inWord := false
	for _, r := range s {
		if isSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			words++
		}
	}
	return words
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// isSpace extends unicode.IsSpace with the ASCII information separators,
// which also delimit words.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
