package diag

import (
	"bufio"
	"os"
	"strings"
)

// StringSource is a LineSource backed by in-memory content for a single
// named file, used by tests and by short-lived lexing of string input.
type StringSource struct {
	file  string
	lines []string
}

// NewStringSource splits content into lines for file.
func NewStringSource(file, content string) *StringSource {
	return &StringSource{file: file, lines: strings.Split(content, "\n")}
}

func (s *StringSource) Line(file string, n int) (string, bool) {
	if file != s.file || n < 1 || n > len(s.lines) {
		return "", false
	}
	return s.lines[n-1], true
}

// FileSource is a LineSource that lazily loads and caches whole files by
// name, independent of any lexer's streaming read position -- a
// diagnostic may need to render a line the lexer's rolling buffer has
// long since evicted.
type FileSource struct {
	cache map[string][]string
}

// NewFileSource returns an empty FileSource; files are loaded on first
// use.
func NewFileSource() *FileSource {
	return &FileSource{cache: make(map[string][]string)}
}

func (s *FileSource) Line(file string, n int) (string, bool) {
	lines, ok := s.cache[file]
	if !ok {
		lines = loadLines(file)
		s.cache[file] = lines
	}
	if n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

func loadLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}
