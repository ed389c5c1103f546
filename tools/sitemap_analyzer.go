package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"

	"github.com/romangod6/sitemap-generator/internal/models"
)

func main() {
	samples := flag.Int("samples", 5, "Number of entries to print")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: %s [-samples n] <sitemap.xml>", os.Args[0])
	}

	sitemap, err := readSitemap(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error reading sitemap: %v", err)
	}

	// Print sitemap statistics
	fmt.Printf("Namespace: %s\n", sitemap.Xmlns)
	fmt.Printf("Total URLs found: %d\n\n", sitemap.Len())

	for i := 0; i < *samples && i < sitemap.Len(); i++ {
		loc := sitemap.URLs[i].Loc
		decoded, err := url.PathUnescape(loc)
		if err != nil {
			decoded = fmt.Sprintf("(undecodable: %v)", err)
		}
		fmt.Printf("%d: %s\n   -> %s\n", i+1, loc, decoded)
	}
}

func readSitemap(path string) (*models.URLSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var sitemap models.URLSet
	if err := xml.Unmarshal(body, &sitemap); err != nil {
		return nil, err
	}

	return &sitemap, nil
}
