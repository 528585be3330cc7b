package linechart

// Align makes two absolute command sequences structurally comparable:
// equal length and, per index, equal coordinate counts. Both outputs
// are deep copies; callers own them.
//
// The shorter sequence repeats its final command, which keeps trailing
// geometry static instead of attempting point correspondence. That is
// the right trade for consecutive frames of a growing line, where the
// length difference is small and growth happens at the tail.
func Align(a, b []Command) ([]Command, []Command) {
	a = cloneCommands(a)
	b = cloneCommands(b)

	a = padLength(a, len(b))
	b = padLength(b, len(a))

	for i := range a {
		n, m := len(a[i].Coordinates), len(b[i].Coordinates)
		switch {
		case n < m:
			a[i].Coordinates = padCoordinates(a[i].Coordinates, m)
		case m < n:
			b[i].Coordinates = padCoordinates(b[i].Coordinates, n)
		}
	}
	return a, b
}

func cloneCommands(cmds []Command) []Command {
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		out[i] = c.clone()
	}
	return out
}

// padLength extends cmds to n commands by appending copies of its
// final command. An empty sequence is seeded with a LineTo at the
// origin.
func padLength(cmds []Command, n int) []Command {
	if len(cmds) == 0 {
		cmds = []Command{{Type: LineTo, Coordinates: []float64{0, 0}}}
	}
	for len(cmds) < n {
		cmds = append(cmds, cmds[len(cmds)-1].clone())
	}
	return cmds
}

// padCoordinates extends coords to n values by repeating the trailing
// coordinate pair (not zeros), preserving a valid terminal point for
// interpolation.
func padCoordinates(coords []float64, n int) []float64 {
	out := append(make([]float64, 0, n), coords...)
	for len(out) < n {
		switch len(out) {
		case 0:
			out = append(out, 0)
		case 1:
			out = append(out, out[0])
		default:
			out = append(out, out[len(out)-2])
		}
	}
	return out
}
