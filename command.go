package linechart

import (
	"math"
	"strconv"
	"strings"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// CommandType identifies one drawing command of the SVG path
// mini-language.
type CommandType int

// These are the command types a path description may contain.
const (
	MoveTo CommandType = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicCurveTo
	SmoothCubicCurveTo
	QuadraticCurveTo
	SmoothQuadraticCurveTo
	ArcTo
	ClosePath
)

// Arity returns the number of coordinates a single occurrence of the
// command consumes.
func (ct CommandType) Arity() int {
	switch ct {
	case MoveTo, LineTo, SmoothQuadraticCurveTo:
		return 2
	case HorizontalLineTo, VerticalLineTo:
		return 1
	case CubicCurveTo:
		return 6
	case SmoothCubicCurveTo, QuadraticCurveTo:
		return 4
	case ArcTo:
		return 7
	case ClosePath:
		return 0
	}
	return 0
}

// Letter returns the absolute command letter.
func (ct CommandType) Letter() byte {
	switch ct {
	case MoveTo:
		return 'M'
	case LineTo:
		return 'L'
	case HorizontalLineTo:
		return 'H'
	case VerticalLineTo:
		return 'V'
	case CubicCurveTo:
		return 'C'
	case SmoothCubicCurveTo:
		return 'S'
	case QuadraticCurveTo:
		return 'Q'
	case SmoothQuadraticCurveTo:
		return 'T'
	case ArcTo:
		return 'A'
	case ClosePath:
		return 'Z'
	}
	return '?'
}

func (ct CommandType) String() string {
	return string(ct.Letter())
}

// commandTypeForLetter maps a command letter to its type and
// relative flag. ok is false for letters outside the path alphabet.
func commandTypeForLetter(s string) (ct CommandType, relative bool, ok bool) {
	switch s {
	case "M":
		return MoveTo, false, true
	case "m":
		return MoveTo, true, true
	case "L":
		return LineTo, false, true
	case "l":
		return LineTo, true, true
	case "H":
		return HorizontalLineTo, false, true
	case "h":
		return HorizontalLineTo, true, true
	case "V":
		return VerticalLineTo, false, true
	case "v":
		return VerticalLineTo, true, true
	case "C":
		return CubicCurveTo, false, true
	case "c":
		return CubicCurveTo, true, true
	case "S":
		return SmoothCubicCurveTo, false, true
	case "s":
		return SmoothCubicCurveTo, true, true
	case "Q":
		return QuadraticCurveTo, false, true
	case "q":
		return QuadraticCurveTo, true, true
	case "T":
		return SmoothQuadraticCurveTo, false, true
	case "t":
		return SmoothQuadraticCurveTo, true, true
	case "A":
		return ArcTo, false, true
	case "a":
		return ArcTo, true, true
	case "Z", "z":
		return ClosePath, false, true
	}
	return 0, false, false
}

// Command is one drawing instruction from a path description.
type Command struct {
	Type     CommandType
	Relative bool
	// Coordinates holds the numeric values of the command. Until
	// normalization a command may carry more coordinate groups than
	// its arity, representing implicit repetition.
	Coordinates []float64
	// SourceText is the text the command was parsed from. Diagnostics
	// only, never re-parsed.
	SourceText string
}

func (c Command) clone() Command {
	cp := c
	cp.Coordinates = append([]float64(nil), c.Coordinates...)
	return cp
}

// String serializes the command. Coordinates are grouped into
// comma-separated pairs, groups separated by spaces; ClosePath prints
// its bare letter.
func (c Command) String() string {
	letter := c.Type.Letter()
	if c.Relative {
		letter += 'a' - 'A'
	}
	if c.Type == ClosePath || len(c.Coordinates) == 0 {
		return string(letter)
	}

	var sb strings.Builder
	sb.WriteByte(letter)
	for i, v := range c.Coordinates {
		if i > 0 {
			if i%2 == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(',')
			}
		}
		sb.WriteString(formatCoordinate(v))
	}
	return sb.String()
}

// CommandsToPath serializes a command sequence back into a path
// description, commands joined by single spaces.
func CommandsToPath(cmds []Command) string {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// formatCoordinate renders v rounded to 3 decimal places with trailing
// zeros trimmed; integers print without a decimal point.
func formatCoordinate(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0"
	}
	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Path is a parsed path description: an ordered command sequence. A
// Path is never mutated once produced; parsing a new description
// always yields a new Path.
type Path struct {
	Commands []Command
}

// Len returns the command count.
func (p *Path) Len() int {
	return len(p.Commands)
}

func (p *Path) String() string {
	return CommandsToPath(p.Commands)
}
