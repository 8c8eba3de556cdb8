package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// commentPrefix marks script lines that are skipped.
const commentPrefix = "#"

// RunBatch evaluates every line of r until EOF or an exit line.
// Blank lines and lines starting with "#" are skipped.
func (s *Session) RunBatch(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if !s.Evaluate(line) {
			s.log.Debug("Batch stopped by exit", "line", lineNo)
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading batch input at line %d: %w", lineNo+1, err)
	}

	stats := s.Stats()
	s.log.Debug("Batch finished", "evaluated", stats.Evaluated, "converted", stats.Converted, "failed", stats.Failed)
	return nil
}
