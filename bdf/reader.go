package bdf

import (
	"bufio"
	"io"
	"strings"
)

const commentTag = "COMMENT"

// lineReader pulls the next semantically meaningful line out of a BDF
// stream: whitespace-only lines and COMMENT lines are skipped, and
// every line comes back with surrounding whitespace trimmed. An empty
// string signals end of stream.
type lineReader struct {
	src *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{src: bufio.NewReader(r)}
}

func (lr *lineReader) nextLine() (string, error) {
	for {
		line, err := lr.src.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, commentTag) {
			return trimmed, nil
		}
		if err == io.EOF {
			return "", nil
		}
	}
}
