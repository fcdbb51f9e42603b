package dbg

import (
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/polypi/geometry"
)

// Vertices print as long float pairs which are hard to tell apart in a dump.
// Each vertex pointer gets a readable name the first time it is asked for, and
// keeps it for the life of the process.
var vertexNames = make(map[*geometry.Point]string)

func init() {
	// Names are handed out in order of demand, so make them differ between runs
	// as a reminder that a name only means something within one run.
	petname.NonDeterministicMode()
}

func Name(p *geometry.Point) string {
	if p == nil {
		return "Ø"
	}
	if name, ok := vertexNames[p]; ok {
		return name
	}
	name := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	vertexNames[p] = name
	return name
}
