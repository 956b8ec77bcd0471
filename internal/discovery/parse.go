package discovery

import (
	"bufio"
	"io"
	"strings"
)

// parseDeclarations reads one declaration stream into its logical entries.
// A line is skipped when empty or when its first byte is '#'. Otherwise any
// text from the first '#' to end of line is a trailing comment and is
// stripped; the remainder is emitted verbatim, surrounding whitespace
// included. Order within the stream is preserved.
func parseDeclarations(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	var declarations []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		if i := strings.IndexByte(line, '#'); i > -1 {
			line = line[:i]
		}
		declarations = append(declarations, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return declarations, nil
}
