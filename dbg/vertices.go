package dbg

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polypi/geometry"
)

// Print each vertex of the polygon on its own line, prefixed with its readable
// name. Vertices on an axis are cyan, the rest green.
func DumpVertices(w io.Writer, poly geometry.Polygon) error {
	for _, p := range poly.Points {
		if _, err := fmt.Fprintf(w, "%s %s\n", VertexName(p), p); err != nil {
			return err
		}
	}
	return nil
}

func VertexName(p *geometry.Point) string {
	name := Name(p)
	if geometry.Equal(p.X, 0) || geometry.Equal(p.Y, 0) {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}
