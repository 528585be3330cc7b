package linechart

// cursor is the transient pen state threaded through normalization:
// the current point and the start of the open subpath.
type cursor struct {
	current Tuple
	start   Tuple
}

// ToAbsolute converts commands to absolute coordinates and expands
// implicit repetition, so every output command has Relative == false
// and exactly its type's arity (ClosePath excepted, always 0).
// Coordinate groups after the first MoveTo pair become LineTo
// commands, per the path mini-language; every other command repeats
// its own type.
func ToAbsolute(cmds []Command) []Command {
	out := make([]Command, 0, len(cmds))
	var cur cursor
	for _, c := range cmds {
		var abs []Command
		abs, cur = absolutize(c, cur)
		out = append(out, abs...)
	}
	return out
}

// absolutize expands one parsed command into fixed-arity absolute
// commands and returns the advanced cursor.
func absolutize(c Command, cur cursor) ([]Command, cursor) {
	if c.Type == ClosePath {
		cur.current = cur.start
		return []Command{{Type: ClosePath, SourceText: c.SourceText}}, cur
	}

	arity := c.Type.Arity()
	out := make([]Command, 0, len(c.Coordinates)/arity)
	for g := 0; g*arity < len(c.Coordinates); g++ {
		group := append([]float64(nil), c.Coordinates[g*arity:(g+1)*arity]...)
		ct := c.Type
		if ct == MoveTo && g > 0 {
			ct = LineTo
		}
		if c.Relative {
			offsetGroup(ct, group, cur.current)
		}
		cur = advance(ct, group, cur, ct == MoveTo)
		out = append(out, Command{Type: ct, Coordinates: group, SourceText: c.SourceText})
	}
	return out, cur
}

// offsetGroup shifts a relative coordinate group by the current pen
// position. Arc radii, rotation and flags are not positional and are
// never offset.
func offsetGroup(ct CommandType, group []float64, cur Tuple) {
	switch ct {
	case HorizontalLineTo:
		group[0] += cur[0]
	case VerticalLineTo:
		group[0] += cur[1]
	case ArcTo:
		group[5] += cur[0]
		group[6] += cur[1]
	default:
		// pairs: MoveTo, LineTo, SmoothQuadraticCurveTo and the
		// remaining curve families
		for i := 0; i+1 < len(group); i += 2 {
			group[i] += cur[0]
			group[i+1] += cur[1]
		}
	}
}

// advance recomputes the pen position from a command's own semantics.
// coords must already be absolute.
func advance(ct CommandType, coords []float64, cur cursor, isMove bool) cursor {
	switch ct {
	case HorizontalLineTo:
		cur.current[0] = coords[len(coords)-1]
	case VerticalLineTo:
		cur.current[1] = coords[len(coords)-1]
	case ClosePath:
		cur.current = cur.start
	default:
		cur.current = Tuple{coords[len(coords)-2], coords[len(coords)-1]}
	}
	if isMove {
		cur.start = cur.current
	}
	return cur
}
