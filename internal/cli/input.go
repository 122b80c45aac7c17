package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// readAddressFile reads one address per line from the named file, or from
// stdin when name is "-". Blank lines and #-comment lines are dropped before
// the core ever sees them.
func readAddressFile(name string) ([]string, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readAddressLines(r)
}

func readAddressLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

// dropDataSources strips data-source entries from an actual-state listing.
// Data sources never get moved mappings, so leaving them in would only
// produce NOT_COVERED noise.
func dropDataSources(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.HasPrefix(line, "data.") || strings.Contains(line, ".data.") {
			continue
		}
		out = append(out, line)
	}
	return out
}
