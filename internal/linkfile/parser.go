package linkfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/handiism/rekonise-unlocker/internal/model"
)

// separator divides a record name from its URL within a line.
const separator = ": "

// Parse reads link records from r, one per line.
//
// Each line has the form "name: url". The line is split at the first
// occurrence of ": ", so URLs containing that sequence survive intact.
// Both sides are trimmed of surrounding whitespace.
//
// Lines that are blank or contain no separator are skipped without
// error. Records are returned in the order they appear in the input.
//
// Example:
//
//	input := "Drum Kit: https://rkns.link/abc12\nSample Pack: https://rkns.link/xyz89\n"
//	records, err := linkfile.Parse(strings.NewReader(input))
func Parse(r io.Reader) ([]*model.LinkRecord, error) {
	var records []*model.LinkRecord

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, url, found := strings.Cut(line, separator)
		if !found {
			continue
		}

		records = append(records, model.NewLinkRecord(strings.TrimSpace(name), strings.TrimSpace(url)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}

	return records, nil
}

// ParseFile reads link records from the file at path.
//
// See Parse for the line format.
//
// Returns an error if the file cannot be opened or read.
func ParseFile(path string) ([]*model.LinkRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open links file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
