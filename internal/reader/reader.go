package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrOpenInput is matched by the error ReadURLs returns when the input file
// cannot be opened. Any other error means reading failed partway through.
var ErrOpenInput = errors.New("unable to open the input file")

// ReadURLs loads the non-empty lines of the file at path, in file order.
// When the file cannot be opened the returned slice is empty and the error
// describes the path.
func ReadURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return []string{}, fmt.Errorf("%w: %s: %w", ErrOpenInput, path, err)
	}
	defer file.Close()

	urls, err := Read(file)
	if err != nil {
		return urls, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return urls, nil
}

// Read splits r into lines and returns those with non-zero length.
// A line holding only whitespace is kept.
func Read(r io.Reader) ([]string, error) {
	urls := []string{}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return urls, err
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			urls = append(urls, line)
		}

		if err != nil {
			return urls, nil
		}
	}
}
