package ignorefile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AntonioJCosta/ign/internal/core/ports"
	"github.com/gofrs/flock"
)

// LocalFileName is the ignore file written in append mode, relative to the working directory.
const LocalFileName = ".gitignore"

// lockSuffix names the advisory lock file kept next to the destination.
const lockSuffix = ".lock"

// maxLineSize bounds a single template line in print mode.
const maxLineSize = 1024 * 1024

// Sink emits template contents to standard output or to a local ignore file.
type Sink struct {
	path string
}

// NewSink creates a Sink appending to the ignore file at path.
func NewSink(path string) ports.TemplateSink {
	if path == "" {
		path = LocalFileName
	}
	return &Sink{path: path}
}

// Destination implements the ports.TemplateSink interface.
func (s *Sink) Destination() string {
	return s.path
}

// LockPath returns the file locked while appending. The destination itself is
// never locked: on Windows a byte-range lock would reject the append.
func (s *Sink) LockPath() string {
	return s.path + lockSuffix
}

// Print implements the ports.TemplateSink interface.
// Every line is written followed by "\n"; the whole template is read before
// the first byte reaches out.
func (s *Sink) Print(templatePath string, out io.Writer) error {
	lines, err := readLines(templatePath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if _, err := w.Write(lines); err != nil {
		return fmt.Errorf("could not write ignore file to output: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write ignore file to output: %w", err)
	}
	return nil
}

// Append implements the ports.TemplateSink interface.
// The template is read completely before the local file is opened.
func (s *Sink) Append(templatePath string) (int, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return 0, fmt.Errorf("could not read ignore file %s: %w", templatePath, err)
	}
	slog.Debug("appending template", "template", templatePath, "bytes", len(content), "dest", s.path)

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("could not open %s for appending: %w", s.path, err)
	}
	defer file.Close()

	lock := flock.New(s.LockPath())
	if err := lock.Lock(); err != nil {
		return 0, fmt.Errorf("could not lock %s: %w", s.path, err)
	}
	defer lock.Unlock()

	w := bufio.NewWriter(file)
	n, err := w.Write(content)
	if err != nil {
		return n, fmt.Errorf("could not write ignore file %s: %w", s.path, err)
	}
	if err := w.Flush(); err != nil {
		return n, fmt.Errorf("could not write ignore file %s: %w", s.path, err)
	}
	return n, nil
}

// readLines returns the file's lines, each terminated by "\n".
func readLines(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read ignore file %s: %w", path, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		buf.Write(scanner.Bytes())
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ignore file %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
