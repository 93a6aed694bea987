// Package report renders the ranked furthest-point report
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/farpoint/farpoint-go/internal/geo"
	"github.com/farpoint/farpoint-go/internal/route"
)

// Row is one segment's entry in the ranked report
type Row struct {
	Segment       *route.RouteSegment
	FurthestKm    float64
	FurthestIndex int
}

// Report holds everything the renderers need: the segments in
// extraction order, the rows ranked by per-segment furthest distance,
// and the single global furthest point (absent when no segments have
// points).
type Report struct {
	Reference geo.Point
	Segments  []route.RouteSegment
	Rows      []Row
	Furthest  *route.FurthestResult
}

// Build computes per-segment and global furthest distances. Ranking is
// a display concern only: extraction order is preserved in Segments and
// the global tie-break (first in traversal order) is computed over it.
func Build(segments []route.RouteSegment, reference geo.Point) *Report {
	r := &Report{Reference: reference, Segments: segments}

	if furthest, ok := route.FindFurthest(segments, reference); ok {
		r.Furthest = &furthest
	}

	for i := range segments {
		if len(segments[i].Coordinates) == 0 {
			continue
		}
		row := Row{Segment: &segments[i]}
		for j, p := range segments[i].Coordinates {
			if d := geo.DistanceKm(reference, p); j == 0 || d > row.FurthestKm {
				row.FurthestKm = d
				row.FurthestIndex = j
			}
		}
		r.Rows = append(r.Rows, row)
	}

	// Stable sort keeps extraction order among equal distances.
	sort.SliceStable(r.Rows, func(i, j int) bool {
		return r.Rows[i].FurthestKm > r.Rows[j].FurthestKm
	})

	return r
}

// Render produces the console report. With verbose set, every point of
// every segment is listed with its distance.
func (r *Report) Render(verbose bool) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("FARPOINT ROUTE REPORT"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("Reference: %s", formatPoint(r.Reference))))
	sb.WriteString("\n\n")

	if len(r.Rows) == 0 {
		sb.WriteString(warningStyle.Render("No routes found in document"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%4s  %-40s %7s  %12s", "RANK", "SEGMENT", "POINTS", "FURTHEST")))
	sb.WriteString("\n")

	for i, row := range r.Rows {
		line := fmt.Sprintf("%4d  %-40s %7d  %9.1f km",
			i+1, truncate(row.Segment.Name, 40), len(row.Segment.Coordinates), row.FurthestKm)
		if r.Furthest != nil && row.Segment == r.Furthest.Segment {
			sb.WriteString(highlightStyle.Render(line + "  ◀ furthest"))
		} else {
			sb.WriteString(textStyle.Render(line))
		}
		sb.WriteString("\n")

		if verbose {
			sb.WriteString(r.renderPoints(row.Segment))
		}
	}

	if r.Furthest != nil {
		sb.WriteString("\n")
		sb.WriteString(headerStyle.Render("Furthest point: "))
		sb.WriteString(highlightStyle.Render(fmt.Sprintf("%s, point %d of %q, %.1f km",
			formatPoint(r.Furthest.Point), r.Furthest.PointIndex,
			r.Furthest.Segment.Name, r.Furthest.DistanceKm)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderPoints lists a segment's points with their distances
func (r *Report) renderPoints(seg *route.RouteSegment) string {
	var sb strings.Builder
	for j, p := range seg.Coordinates {
		marker := " "
		if r.Furthest != nil && seg == r.Furthest.Segment && j == r.Furthest.PointIndex {
			marker = "▶"
		}
		sb.WriteString(dimStyle.Render(fmt.Sprintf("      %s [%3d] %s  %9.1f km",
			marker, j, formatPoint(p), geo.DistanceKm(r.Reference, p))))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatPoint formats a point as "lat, lon" with altitude when present
func formatPoint(p geo.Point) string {
	if p.HasAltitude() {
		return fmt.Sprintf("%.5f, %.5f (%.0f m)", p.Latitude, p.Longitude, *p.Altitude)
	}
	return fmt.Sprintf("%.5f, %.5f", p.Latitude, p.Longitude)
}

// truncate shortens a name to fit the table column
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
