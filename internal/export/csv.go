// Package export provides report export functionality for the farpoint CLI
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/farpoint/farpoint-go/internal/report"
)

// ExportCSV writes the ranked segment table to a CSV file. An empty
// filename generates a timestamped name in the given directory.
func ExportCSV(r *report.Report, filename, directory string) (string, error) {
	if filename == "" {
		filename = GenerateFilename("farpoint_report", "csv", directory)
	}

	file, err := os.Create(filename)
	if err != nil {
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
		file, err = os.Create(filename)
		if err != nil {
			return "", fmt.Errorf("failed to create file: %w", err)
		}
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"rank",
		"segment",
		"points",
		"furthest_lat",
		"furthest_lon",
		"furthest_altitude_m",
		"furthest_point_index",
		"distance_km",
		"is_global_furthest",
	}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range r.Rows {
		p := row.Segment.Coordinates[row.FurthestIndex]
		altitude := ""
		if p.HasAltitude() {
			altitude = strconv.FormatFloat(*p.Altitude, 'f', -1, 64)
		}
		global := r.Furthest != nil && row.Segment == r.Furthest.Segment

		record := []string{
			strconv.Itoa(i + 1),
			row.Segment.Name,
			strconv.Itoa(len(row.Segment.Coordinates)),
			strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			strconv.FormatFloat(p.Longitude, 'f', -1, 64),
			altitude,
			strconv.Itoa(row.FurthestIndex),
			strconv.FormatFloat(row.FurthestKm, 'f', 3, 64),
			strconv.FormatBool(global),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	return filename, nil
}

// GenerateFilename builds a timestamped export filename
func GenerateFilename(prefix, extension, directory string) string {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", prefix, timestamp, extension)
	if directory != "" {
		return filepath.Join(directory, filename)
	}
	return filename
}
