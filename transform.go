package linechart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	mt "github.com/rustyoz/Mtransform"
)

// ParseTransform parses an SVG transform attribute (matrix, translate,
// scale, rotate) into a single transform, composed left to right the
// way the chart layer writes them.
func ParseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	rest := strings.TrimSpace(s)
	if rest == "" {
		return t, fmt.Errorf("empty transform")
	}

	for rest != "" {
		open := strings.IndexByte(rest, '(')
		clos := strings.IndexByte(rest, ')')
		if open < 0 || clos < open {
			return t, fmt.Errorf("malformed transform %q", s)
		}

		name := strings.TrimSpace(rest[:open])
		args, err := transformArgs(rest[open+1 : clos])
		if err != nil {
			return t, err
		}
		op, err := transformOperation(name, args)
		if err != nil {
			return t, err
		}
		t = mt.MultiplyTransforms(t, op)

		rest = strings.TrimSpace(rest[clos+1:])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ","))
	}
	return t, nil
}

func transformArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &InvalidCoordinateError{Token: f}
		}
		out = append(out, v)
	}
	return out, nil
}

func transformOperation(name string, args []float64) (mt.Transform, error) {
	op := mt.Identity()
	switch name {
	case "matrix":
		if len(args) != 6 {
			return op, fmt.Errorf("matrix expects 6 values, got %d", len(args))
		}
		op[0][0], op[1][0] = args[0], args[1]
		op[0][1], op[1][1] = args[2], args[3]
		op[0][2], op[1][2] = args[4], args[5]
	case "translate":
		if len(args) != 1 && len(args) != 2 {
			return op, fmt.Errorf("translate expects 1 or 2 values, got %d", len(args))
		}
		op[0][2] = args[0]
		if len(args) == 2 {
			op[1][2] = args[1]
		}
	case "scale":
		if len(args) != 1 && len(args) != 2 {
			return op, fmt.Errorf("scale expects 1 or 2 values, got %d", len(args))
		}
		op[0][0] = args[0]
		op[1][1] = args[0]
		if len(args) == 2 {
			op[1][1] = args[1]
		}
	case "rotate":
		if len(args) != 1 && len(args) != 3 {
			return op, fmt.Errorf("rotate expects 1 or 3 values, got %d", len(args))
		}
		rad := args[0] * math.Pi / 180
		sin, cos := math.Sin(rad), math.Cos(rad)
		op[0][0], op[0][1] = cos, -sin
		op[1][0], op[1][1] = sin, cos
		if len(args) == 3 {
			// rotate about (cx, cy)
			cx, cy := args[1], args[2]
			op[0][2] = cx - cos*cx + sin*cy
			op[1][2] = cy - sin*cx - cos*cy
		}
	default:
		return op, fmt.Errorf("unsupported transform %q", name)
	}
	return op, nil
}

// TransformPath applies an affine transform to a path and returns the
// transformed absolute copy. Horizontal and vertical line commands are
// rewritten as LineTo, since they do not survive rotation or skew;
// arcs transform their endpoint.
// TODO: scale arc radii when the transform is more than a translation.
func TransformPath(p *Path, t mt.Transform) *Path {
	cmds := ToAbsolute(p.Commands)
	out := &Path{Commands: make([]Command, 0, len(cmds))}
	var cur cursor
	for _, c := range cmds {
		nc := c.clone()
		switch c.Type {
		case ClosePath:
			// nothing to map
		case HorizontalLineTo:
			x, y := t.Apply(c.Coordinates[0], cur.current[1])
			nc = Command{Type: LineTo, Coordinates: []float64{x, y}, SourceText: c.SourceText}
		case VerticalLineTo:
			x, y := t.Apply(cur.current[0], c.Coordinates[0])
			nc = Command{Type: LineTo, Coordinates: []float64{x, y}, SourceText: c.SourceText}
		case ArcTo:
			nc.Coordinates[5], nc.Coordinates[6] = t.Apply(c.Coordinates[5], c.Coordinates[6])
		default:
			for j := 0; j+1 < len(nc.Coordinates); j += 2 {
				nc.Coordinates[j], nc.Coordinates[j+1] = t.Apply(nc.Coordinates[j], nc.Coordinates[j+1])
			}
		}
		cur = advance(c.Type, c.Coordinates, cur, c.Type == MoveTo)
		out.Commands = append(out.Commands, nc)
	}
	return out
}
