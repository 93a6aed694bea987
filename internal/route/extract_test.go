package route

import (
	"testing"

	"github.com/farpoint/farpoint-go/internal/kmltree"
	"github.com/farpoint/farpoint-go/internal/testutil"
)

// parseTree builds a document tree from KML text for extractor tests
func parseTree(t *testing.T, kml string) map[string]interface{} {
	t.Helper()
	tree, err := kmltree.Parse([]byte(kml))
	if err != nil {
		t.Fatalf("Failed to parse fixture KML: %v", err)
	}
	return tree
}

func TestCollectSingleLineString(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <name>Coast</name>
      <LineString>
        <coordinates>17.1,48.1,100 17.2,48.2</coordinates>
      </LineString>
    </Placemark>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}

	seg := segments[0]
	if seg.Name != "Coast" {
		t.Errorf("Expected name 'Coast', got %q", seg.Name)
	}
	if len(seg.Coordinates) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(seg.Coordinates))
	}

	first := seg.Coordinates[0]
	if first.Longitude != 17.1 || first.Latitude != 48.1 {
		t.Errorf("Expected lon 17.1 lat 48.1, got lon %f lat %f", first.Longitude, first.Latitude)
	}
	if !first.HasAltitude() || *first.Altitude != 100 {
		t.Errorf("Expected altitude 100, got %v", first.Altitude)
	}
	if seg.Coordinates[1].HasAltitude() {
		t.Error("Expected absent altitude for two-part tuple")
	}
}

func TestCollectFolderBreadcrumb(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Folder>
      <name>NZ</name>
      <Placemark>
        <name>Coast</name>
        <LineString>
          <coordinates>174.0,-41.0</coordinates>
        </LineString>
      </Placemark>
    </Folder>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Name != "NZ / Coast" {
		t.Errorf("Expected name 'NZ / Coast', got %q", segments[0].Name)
	}
}

func TestCollectUnnamedFolderAddsNoBlankCrumb(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Folder>
      <Placemark>
        <name>Coast</name>
        <LineString>
          <coordinates>174.0,-41.0</coordinates>
        </LineString>
      </Placemark>
    </Folder>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Name != "Coast" {
		t.Errorf("Expected name 'Coast', got %q", segments[0].Name)
	}
}

func TestCollectDocumentNameInBreadcrumb(t *testing.T) {
	kml := `<kml>
  <Document>
    <name>Trip</name>
    <Folder>
      <name>Day 1</name>
      <Placemark>
        <name>Walk</name>
        <LineString><coordinates>17.1,48.1</coordinates></LineString>
      </Placemark>
    </Folder>
  </Document>
</kml>`

	segments := CollectRouteSegments(parseTree(t, kml))
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Name != "Trip / Day 1 / Walk" {
		t.Errorf("Expected full breadcrumb name, got %q", segments[0].Name)
	}
}

func TestCollectUnnamedRoute(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <LineString>
        <coordinates>17.1,48.1</coordinates>
      </LineString>
    </Placemark>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Name != "Unnamed route" {
		t.Errorf("Expected 'Unnamed route', got %q", segments[0].Name)
	}
}

func TestCollectMultiGeometrySegmentNumbering(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <name>Track</name>
      <MultiGeometry>
        <LineString><coordinates>17.1,48.1 17.2,48.2</coordinates></LineString>
        <LineString><coordinates>17.3,48.3 17.4,48.4</coordinates></LineString>
      </MultiGeometry>
    </Placemark>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	if segments[0].Name != "Track (segment 1)" {
		t.Errorf("Expected 'Track (segment 1)', got %q", segments[0].Name)
	}
	if segments[1].Name != "Track (segment 2)" {
		t.Errorf("Expected 'Track (segment 2)', got %q", segments[1].Name)
	}
}

func TestCollectSegmentNumberingBeforeEmptySkip(t *testing.T) {
	// The first LineString has no valid points; numbering is assigned
	// in discovery order before the empty-skip, so the surviving
	// segment keeps number 2.
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <name>Track</name>
      <MultiGeometry>
        <LineString><coordinates>garbage</coordinates></LineString>
        <LineString><coordinates>17.3,48.3</coordinates></LineString>
      </MultiGeometry>
    </Placemark>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Name != "Track (segment 2)" {
		t.Errorf("Expected 'Track (segment 2)', got %q", segments[0].Name)
	}
}

func TestCollectNestedMultiGeometry(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <name>Nested</name>
      <MultiGeometry>
        <MultiGeometry>
          <LineString><coordinates>17.1,48.1</coordinates></LineString>
        </MultiGeometry>
        <LineString><coordinates>17.2,48.2</coordinates></LineString>
      </MultiGeometry>
    </Placemark>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments from nested MultiGeometry, got %d", len(segments))
	}
}

func TestCollectDirectAndMultiGeometryLines(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <name>Mixed</name>
      <LineString><coordinates>17.1,48.1</coordinates></LineString>
      <MultiGeometry>
        <LineString><coordinates>17.2,48.2</coordinates></LineString>
      </MultiGeometry>
    </Placemark>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	// Direct line geometries are discovered before MultiGeometry ones.
	if segments[0].Coordinates[0].Longitude != 17.1 {
		t.Errorf("Expected direct LineString first, got lon %f", segments[0].Coordinates[0].Longitude)
	}
}

func TestCollectPreservesDocumentOrder(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <name>First</name>
      <LineString><coordinates>1.0,1.0</coordinates></LineString>
    </Placemark>
    <Folder>
      <name>Middle</name>
      <Placemark>
        <name>Second</name>
        <LineString><coordinates>2.0,2.0</coordinates></LineString>
      </Placemark>
    </Folder>`))

	segments := CollectRouteSegments(tree)
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	if segments[0].Name != "First" || segments[1].Name != "Middle / Second" {
		t.Errorf("Unexpected segment order: %q, %q", segments[0].Name, segments[1].Name)
	}
}

func TestCollectSkipsNonLineGeometries(t *testing.T) {
	tree := parseTree(t, testutil.RouteKML(`
    <Placemark>
      <name>City</name>
      <Point><coordinates>17.1,48.1</coordinates></Point>
    </Placemark>`))

	if segments := CollectRouteSegments(tree); len(segments) != 0 {
		t.Errorf("Expected no segments from a Point placemark, got %d", len(segments))
	}
}

func TestCollectDefensiveOverOddShapes(t *testing.T) {
	trees := []map[string]interface{}{
		nil,
		{},
		{"kml": "just text"},
		{"kml": map[string]interface{}{"Document": "not a container"}},
		{"kml": map[string]interface{}{"Document": map[string]interface{}{
			"Placemark": []interface{}{"bogus", 42.0},
			"Folder":    3.14,
		}}},
	}

	for _, tree := range trees {
		if segments := CollectRouteSegments(tree); len(segments) != 0 {
			t.Errorf("Expected no segments for odd shape %v, got %d", tree, len(segments))
		}
	}
}

func TestParseCoordinatesTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int
	}{
		{name: "single with altitude", input: "17.1,48.1,100", expected: 1},
		{name: "single without altitude", input: "17.1,48.1", expected: 1},
		{name: "newline separated", input: "17.1,48.1,0\n17.2,48.2,0\n17.3,48.3,0", expected: 3},
		{name: "extra whitespace", input: "  17.1,48.1,0   17.2,48.2,0  ", expected: 2},
		{name: "bad token dropped", input: "notanumber,48.1 17.2,48.2", expected: 1},
		{name: "one-part token dropped", input: "17.1 17.2,48.2", expected: 1},
		{name: "non-finite dropped", input: "NaN,48.1 Inf,48.2 17.3,48.3", expected: 1},
		{name: "empty", input: "", expected: 0},
		{name: "whitespace only", input: "   \n\t  ", expected: 0},
		{name: "absent", input: nil, expected: 0},
		{name: "wrapped text node", input: map[string]interface{}{"#text": "17.1,48.1 17.2,48.2"}, expected: 2},
		{name: "wrapped without text key", input: map[string]interface{}{"-id": "x"}, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			points := parseCoordinates(tc.input)
			if len(points) != tc.expected {
				t.Errorf("Expected %d points, got %d", tc.expected, len(points))
			}
		})
	}
}

func TestParseCoordinatesNonFiniteAltitudeAbsent(t *testing.T) {
	points := parseCoordinates("17.1,48.1,NaN")
	if len(points) != 1 {
		t.Fatalf("Expected 1 point, got %d", len(points))
	}
	if points[0].HasAltitude() {
		t.Error("Non-finite altitude should be stored as absent")
	}
}
