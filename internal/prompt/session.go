package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/osuushi/polypi"
	"github.com/osuushi/polypi/dbg"
	"github.com/osuushi/polypi/internal/render"
	"github.com/pkg/errors"
)

const (
	Banner   = "Calculating pi by creating an N-sided polygon and finding its circumference"
	Prompt   = "How many sides? (must be divisible by 4) or ENTER to quit: "
	TryAgain = "Try again."
)

type State int

const (
	AwaitingInput State = iota
	Validating
	Computing
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case Validating:
		return "validating"
	case Computing:
		return "computing"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	Radius float64
	// Dump the quadrant vertices after each report
	Debug bool
	// Print the polygon inline as an image
	Draw bool
	// Pixels per unit when drawing
	Scale float64
	// Write the polygon as an SVG document after each report
	SVG bool
}

func DefaultOptions() Options {
	return Options{Radius: polypi.DefaultRadius, Scale: 200}
}

// A Session holds all of the state of one interactive run: reading side
// counts, one per line, and reporting an approximation for each valid one.
type Session struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options

	state  State
	line   string
	parsed ParseResult
	// Set when the user enters 0. Nothing acts on it: the loop keeps prompting
	// until it sees an empty line.
	exitRequested bool
}

func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		in:    bufio.NewReader(in),
		out:   out,
		opts:  opts,
		state: AwaitingInput,
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) ExitRequested() bool {
	return s.exitRequested
}

// Run the session until the input is exhausted or the user enters an empty
// line. The only errors are failures to read input or write output.
func (s *Session) Run() error {
	for s.state != Terminated {
		if err := s.Step(); err != nil {
			s.state = Terminated
			return err
		}
	}
	return nil
}

// Perform a single state transition.
func (s *Session) Step() error {
	switch s.state {
	case AwaitingInput:
		return s.awaitInput()
	case Validating:
		return s.validate()
	case Computing:
		return s.compute()
	case Terminated:
		return nil
	}
	return errors.Errorf("unknown state %v", s.state)
}

func (s *Session) awaitInput() error {
	if _, err := fmt.Fprintf(s.out, "%s\n%s", Banner, Prompt); err != nil {
		return errors.Wrap(err, "writing prompt")
	}
	// Lines are read whole, however long, so that an oversized line is just
	// another bad side count.
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		s.state = Terminated
		if err == io.EOF {
			return nil
		}
		return errors.Wrap(err, "reading input")
	}
	s.line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if s.line == "" {
		s.state = Terminated
		return nil
	}
	s.state = Validating
	return nil
}

func (s *Session) validate() error {
	s.parsed = ParseSides(s.line)
	if s.parsed.OK {
		s.state = Computing
		return nil
	}
	if s.parsed.Sides == 0 && errors.Cause(s.parsed.Err) == polypi.ErrInvalidSides {
		s.exitRequested = true
	}
	polypi.Logger().Debug("rejected input", "input", s.line, "err", s.parsed.Err)
	s.state = AwaitingInput
	_, err := fmt.Fprintln(s.out, TryAgain)
	return errors.Wrap(err, "writing output")
}

func (s *Session) compute() error {
	s.state = AwaitingInput
	a, err := polypi.Approximate(s.parsed.Sides, s.opts.Radius)
	if err != nil {
		return err
	}

	if s.opts.Debug {
		if err := dbg.DumpVertices(s.out, a.Quadrant); err != nil {
			return errors.Wrap(err, "dumping vertices")
		}
	}
	if err := a.Report(s.out); err != nil {
		return err
	}

	if !s.opts.Draw && !s.opts.SVG {
		return nil
	}
	full := a.Polygon()
	if s.opts.Draw {
		if err := render.Inline(s.out, full, a.Radius, s.opts.Scale); err != nil {
			return err
		}
	}
	if s.opts.SVG {
		if err := render.WriteSVG(s.out, full, a.Quadrant, a.Radius); err != nil {
			return err
		}
	}
	return nil
}
