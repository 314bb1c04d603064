package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/nyaosorg/go-readline-ny"
	"github.com/nyaosorg/go-readline-ny/simplehistory"
	"github.com/spf13/afero"
)

// History is the line history shared by the editor and the session.
type History interface {
	readline.IHistory
	Add(string)
}

// fileHistory keeps entries in memory and appends each new entry to a file,
// one Go-quoted string per line. Without a filename nothing is written.
type fileHistory struct {
	filename string
	entries  *simplehistory.Container
	fs       afero.Fs
}

func (h *fileHistory) Len() int {
	return h.entries.Len()
}

func (h *fileHistory) At(i int) string {
	return h.entries.At(i)
}

// Add records s unless it is blank or repeats the latest entry.
func (h *fileHistory) Add(s string) {
	if strings.TrimSpace(s) == "" || h.Len() > 0 && h.At(h.Len()-1) == s {
		return
	}
	h.entries.Add(s)
	if h.filename == "" {
		return
	}

	file, err := h.fs.OpenFile(h.filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		slog.Error("failed to open history file", "file", h.filename, "err", err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close history file", "file", h.filename, "err", err)
		}
	}()
	if _, err := fmt.Fprintln(file, strconv.Quote(s)); err != nil {
		slog.Error("failed to write to history file", "file", h.filename, "err", err)
	}
}

// loadHistory reads filename into a new history. A missing file yields an
// empty history that creates the file on the first Add. An empty filename
// yields a history that is never persisted.
func loadHistory(fs afero.Fs, filename string) (History, error) {
	h := &fileHistory{filename: filename, entries: simplehistory.New(), fs: fs}
	if filename == "" {
		return h, nil
	}

	b, err := afero.ReadFile(fs, filename)
	if errors.Is(err, os.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return nil, err
	}
	for i, line := range strings.Split(string(b), "\n") {
		if line == "" {
			continue
		}
		s, err := strconv.Unquote(line)
		if err != nil {
			return nil, fmt.Errorf("history file %v line %d: %w", filename, i+1, err)
		}
		h.entries.Add(s)
	}
	return h, nil
}
