// Package kmltree parses KML markup into a generic document tree
package kmltree

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

// Parse decodes KML text into a generic tree: a map from tag name to
// either a child map, a text string, or a []interface{} when the tag
// repeats. Numeric casting is left off so leaf text stays string — the
// extractor owns coordinate parsing.
func Parse(data []byte) (map[string]interface{}, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse KML: %w", err)
	}
	return map[string]interface{}(m), nil
}
