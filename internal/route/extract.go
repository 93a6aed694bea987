// Package route extracts named route segments from a generic KML
// document tree and scans them for the furthest point from a reference.
package route

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/farpoint/farpoint-go/internal/geo"
)

// RouteSegment is one named, ordered sequence of geographic points
// representing a single path. Coordinate order is the path order from
// the source geometry and is never reordered or deduplicated.
type RouteSegment struct {
	Name        string
	Coordinates []geo.Point
}

// CollectRouteSegments walks a parsed KML document tree and returns all
// LineString geometries as named route segments, in document order.
// The tree is the loosely-typed shape produced by kmltree.Parse:
// repeated tags are slices, singleton tags bare values. The walk is
// total over arbitrary shapes — missing keys and wrong types yield
// empty results, never errors.
func CollectRouteSegments(doc map[string]interface{}) []RouteSegment {
	root := doc
	if kml, ok := asNode(doc["kml"]); ok {
		root = kml
	}

	var segments []RouteSegment
	for _, entry := range asSequence(root["Document"]) {
		if container, ok := asNode(entry); ok {
			walkContainer(container, nil, &segments)
		}
	}
	return segments
}

// walkContainer processes one Folder/Document container: its own
// placemarks first, then nested containers, both in document order.
// A container contributes its display name to the breadcrumb only when
// the name is non-empty.
func walkContainer(container map[string]interface{}, crumbs []string, out *[]RouteSegment) {
	if name := textContent(container["name"]); name != "" {
		crumbs = append(crumbs[:len(crumbs):len(crumbs)], name)
	}

	for _, entry := range asSequence(container["Placemark"]) {
		if pm, ok := asNode(entry); ok {
			collectPlacemark(pm, crumbs, out)
		}
	}

	for _, key := range []string{"Folder", "Document"} {
		for _, entry := range asSequence(container[key]) {
			if sub, ok := asNode(entry); ok {
				walkContainer(sub, crumbs, out)
			}
		}
	}
}

// collectPlacemark flattens a placemark's line geometries into route
// segments. Segment numbering follows discovery order of all line
// geometries under the placemark, assigned before empty geometries are
// filtered out, so numbers can have gaps.
func collectPlacemark(pm map[string]interface{}, crumbs []string, out *[]RouteSegment) {
	if name := textContent(pm["name"]); name != "" {
		crumbs = append(crumbs[:len(crumbs):len(crumbs)], name)
	}

	lines := lineGeometries(pm)

	base := strings.Join(crumbs, " / ")
	if base == "" {
		base = "Unnamed route"
	}

	for i, line := range lines {
		points := parseCoordinates(line["coordinates"])
		if len(points) == 0 {
			continue
		}

		name := base
		if len(lines) > 1 {
			name = fmt.Sprintf("%s (segment %d)", base, i+1)
		}

		*out = append(*out, RouteSegment{Name: name, Coordinates: points})
	}
}

// lineGeometries returns all LineString nodes reachable from a node:
// direct children plus those nested inside MultiGeometry groupings at
// any depth, in discovery order.
func lineGeometries(node map[string]interface{}) []map[string]interface{} {
	var lines []map[string]interface{}

	for _, entry := range asSequence(node["LineString"]) {
		if ls, ok := asNode(entry); ok {
			lines = append(lines, ls)
		}
	}

	for _, entry := range asSequence(node["MultiGeometry"]) {
		if mg, ok := asNode(entry); ok {
			lines = append(lines, lineGeometries(mg)...)
		}
	}

	return lines
}

// parseCoordinates parses raw KML coordinate text into points.
// Tokens are whitespace-separated "lon,lat[,alt]" tuples — longitude
// first, per the KML convention. A token is dropped entirely when
// longitude or latitude is missing or non-finite; a non-finite altitude
// is stored as absent rather than zero.
func parseCoordinates(raw interface{}) []geo.Point {
	var points []geo.Point

	for _, token := range strings.Fields(textContent(raw)) {
		parts := strings.Split(token, ",")
		if len(parts) < 2 {
			continue
		}

		lon, ok1 := parseFinite(parts[0])
		lat, ok2 := parseFinite(parts[1])
		if !ok1 || !ok2 {
			continue
		}

		p := geo.Point{Latitude: lat, Longitude: lon}
		if len(parts) >= 3 {
			if alt, ok := parseFinite(parts[2]); ok {
				p.Altitude = &alt
			}
		}
		points = append(points, p)
	}

	return points
}

// parseFinite parses a float and rejects NaN and infinities
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// asSequence normalizes the repeated-tag ambiguity of the tree shape:
// absent values become an empty sequence, a scalar a one-element
// sequence, and an existing sequence itself.
func asSequence(v interface{}) []interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return val
	default:
		return []interface{}{v}
	}
}

// asNode returns v as a tree node when it is one
func asNode(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

// textContent resolves a leaf value to trimmed plain text. A leaf is
// either a bare string or a node carrying its text under the "#text"
// key (the decoder uses the wrapped form when attributes are present).
func textContent(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]interface{}:
		if text, ok := val["#text"].(string); ok {
			return strings.TrimSpace(text)
		}
	}
	return ""
}
