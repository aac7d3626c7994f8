package codes

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnreadableFile is returned when the source file cannot be opened or read.
var ErrUnreadableFile = errors.New("cannot read codes file")

// ReadFile reads codes from a plain-text file, one per line. Blank lines are
// skipped and surrounding whitespace is trimmed; everything else is taken
// verbatim, in file order.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrUnreadableFile, err)
	}
	defer f.Close()

	var batch []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		batch = append(batch, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrUnreadableFile, err)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: %s contains no codes", ErrUnreadableFile, path)
	}

	return batch, nil
}
