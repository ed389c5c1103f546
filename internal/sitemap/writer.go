// Package sitemap serializes URL lists as sitemaps.org 0.9 documents.
package sitemap

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/romangod6/sitemap-generator/internal/encoder"
	"github.com/romangod6/sitemap-generator/internal/models"
)

// EncodeFunc turns a raw input line into a <loc> value.
type EncodeFunc func(string) string

// Build creates the sitemap model for urls, in order. A nil encode uses
// encoder.Encode.
func Build(urls []string, encode EncodeFunc) *models.URLSet {
	if encode == nil {
		encode = encoder.Encode
	}

	set := models.NewURLSet()
	set.URLs = make([]models.URL, 0, len(urls))
	for _, u := range urls {
		set.Add(encode(u))
	}
	return set
}

// Write emits the XML declaration followed by the urlset document.
// An empty list produces an empty urlset element.
func Write(w io.Writer, urls []string, encode EncodeFunc) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(Build(urls, encode)); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile creates or truncates path and writes the sitemap to it. If the
// file cannot be opened nothing is written.
func WriteFile(path string, urls []string, encode EncodeFunc) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to open the output file: %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := Write(bw, urls, encode); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
