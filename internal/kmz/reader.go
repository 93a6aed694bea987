// Package kmz reads KML documents out of KMZ archives and plain KML files
package kmz

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadDocument returns the KML text for the given path. A .kml file is
// read directly; anything else is treated as a KMZ (zip) archive.
func ReadDocument(path string) ([]byte, error) {
	path = expandPath(path)

	if strings.HasSuffix(strings.ToLower(path), ".kml") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read KML file: %w", err)
		}
		return data, nil
	}

	return readArchive(path)
}

// readArchive extracts the KML document from a KMZ archive. The entry
// named doc.kml wins; otherwise the first entry with a .kml extension
// is used.
func readArchive(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMZ file: %w", err)
	}
	defer r.Close()

	var kmlFile *zip.File
	for _, f := range r.File {
		name := strings.ToLower(f.Name)
		if name == "doc.kml" {
			kmlFile = f
			break
		}
		if strings.HasSuffix(name, ".kml") && kmlFile == nil {
			kmlFile = f
		}
	}

	if kmlFile == nil {
		return nil, fmt.Errorf("no KML file found in KMZ archive")
	}

	rc, err := kmlFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open KML in KMZ: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read KML from KMZ: %w", err)
	}

	return data, nil
}

// expandPath expands environment variables and a leading ~
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}
