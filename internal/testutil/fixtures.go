// Package testutil provides KML and KMZ fixture builders for tests
package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// WriteKML writes KML content to a file under dir and returns its path
func WriteKML(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write KML file: %v", err)
	}
	return path
}

// WriteKMZ creates a KMZ (zip) archive under dir containing the given
// entries, keyed by entry name.
func WriteKMZ(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	zipFile, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create KMZ file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for entryName, content := range entries {
		f, err := w.Create(entryName)
		if err != nil {
			t.Fatalf("Failed to create %s in archive: %v", entryName, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", entryName, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return path
}

// RouteKML wraps the given body in a minimal KML document envelope
func RouteKML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
` + body + `
  </Document>
</kml>`
}
