package session

import (
	"bufio"
	"io"
	"strings"
)

// LineReader supplies input one line at a time.
type LineReader interface {
	ReadLine() (string, error)
}

// Scanner reads lines of any length from an io.Reader.
type Scanner struct {
	r *bufio.Reader
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. A final line
// without a newline is returned as is; after it ReadLine returns io.EOF.
func (s *Scanner) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Lines is a LineReader over a fixed list of lines.
type Lines []string

func (l *Lines) ReadLine() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}
