package prompt

import (
	"strconv"
	"strings"

	"github.com/osuushi/polypi"
	"github.com/pkg/errors"
)

// The outcome of parsing one line of input as a side count. OK is set only
// when Sides is usable for an approximation; otherwise Err says why not.
type ParseResult struct {
	Sides int
	OK    bool
	Err   error
}

func ParseSides(line string) ParseResult {
	sides, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return ParseResult{Err: errors.Wrapf(err, "parsing %q", line)}
	}
	if !polypi.ValidSides(sides) {
		return ParseResult{
			Sides: sides,
			Err:   errors.Wrapf(polypi.ErrInvalidSides, "%d is not a positive multiple of 4", sides),
		}
	}
	return ParseResult{Sides: sides, OK: true}
}
