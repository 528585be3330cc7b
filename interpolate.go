package linechart

import "strings"

// Filter selects commands by type and/or zero-based index.
type Filter struct {
	Types   []CommandType
	Indices []int
}

// matches reports whether the pair at idx is selected. Type entries
// match when either endpoint's type matches, so the decision does not
// depend on progress.
func (f *Filter) matches(idx int, a, b Command) bool {
	if f == nil {
		return false
	}
	for _, i := range f.Indices {
		if i == idx {
			return true
		}
	}
	for _, t := range f.Types {
		if a.Type == t || b.Type == t {
			return true
		}
	}
	return false
}

// Options configures an interpolation request.
type Options struct {
	// Include forces matching commands to interpolate. Without it,
	// every command except ClosePath interpolates.
	Include *Filter
	// Exclude forces matching commands to pass through unchanged.
	// Exclude wins over Include.
	Exclude *Filter
	// MaxSegmentLength is reserved for a future subdivision pass. It
	// is accepted and ignored.
	MaxSegmentLength float64
}

// PathInterpolator evaluates intermediate path descriptions between
// two endpoint paths. It owns aligned copies of both command
// sequences; evaluation never mutates them, so one interpolator may
// serve any number of Eval calls in any order.
type PathInterpolator struct {
	a, b []Command

	// pre-alignment serializations: the exact endpoint paths and the
	// pass-through text per index
	from, to     string
	passA, passB []string

	interp []bool
}

// NewInterpolator parses, normalizes and aligns the two path
// descriptions and returns their evaluator. opts may be nil.
func NewInterpolator(fromPath, toPath string, opts *Options) (*PathInterpolator, error) {
	from, err := ParsePath(fromPath)
	if err != nil {
		return nil, err
	}
	to, err := ParsePath(toPath)
	if err != nil {
		return nil, err
	}
	return BuildInterpolator(ToAbsolute(from.Commands), ToAbsolute(to.Commands), opts), nil
}

// Interpolate is the convenience form of NewInterpolator, returning
// the evaluator as a pure progress→path function.
func Interpolate(fromPath, toPath string, opts *Options) (func(t float64) string, error) {
	pi, err := NewInterpolator(fromPath, toPath, opts)
	if err != nil {
		return nil, err
	}
	return pi.Eval, nil
}

// BuildInterpolator aligns two normalized command sequences into an
// evaluator. Inputs are copied; the caller cannot mutate the result's
// state afterwards.
func BuildInterpolator(a, b []Command, opts *Options) *PathInterpolator {
	alignedA, alignedB := Align(a, b)
	pi := &PathInterpolator{
		a:      alignedA,
		b:      alignedB,
		from:   CommandsToPath(a),
		to:     CommandsToPath(b),
		passA:  make([]string, len(alignedA)),
		passB:  make([]string, len(alignedA)),
		interp: make([]bool, len(alignedA)),
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	for i := range alignedA {
		pi.interp[i] = interpolates(i, alignedA[i], alignedB[i], o)
		pi.passA[i] = passThrough(a, i)
		pi.passB[i] = passThrough(b, i)
	}
	return pi
}

// interpolates decides whether the pair at idx is interpolated or
// passed through. ClosePath carries no coordinates and is structural,
// so it always passes through.
func interpolates(idx int, a, b Command, o Options) bool {
	if o.Exclude.matches(idx, a, b) {
		return false
	}
	if a.Type == ClosePath || b.Type == ClosePath {
		return false
	}
	if o.Include != nil {
		return o.Include.matches(idx, a, b)
	}
	return true
}

// passThrough serializes the pre-alignment command backing index i;
// indices in the padded tail fall back to the final source command.
func passThrough(src []Command, i int) string {
	if len(src) == 0 {
		return Command{Type: LineTo, Coordinates: []float64{0, 0}}.String()
	}
	if i >= len(src) {
		i = len(src) - 1
	}
	return src[i].String()
}

// Eval returns the path description at progress t. t is clamped to
// [0,1]; identical t always yields an identical string. Command types
// and pass-through text come from the first endpoint below 0.5 and
// from the second at or above it.
func (pi *PathInterpolator) Eval(t float64) string {
	if t <= 0 {
		return pi.from
	}
	if t >= 1 {
		return pi.to
	}

	parts := make([]string, len(pi.a))
	for i := range pi.a {
		if !pi.interp[i] {
			if t < 0.5 {
				parts[i] = pi.passA[i]
			} else {
				parts[i] = pi.passB[i]
			}
			continue
		}

		a, b := pi.a[i], pi.b[i]
		ct := a.Type
		if t >= 0.5 {
			ct = b.Type
		}
		coords := make([]float64, len(a.Coordinates))
		for j := range coords {
			coords[j] = lerp(a.Coordinates[j], b.Coordinates[j], t)
		}
		parts[i] = Command{Type: ct, Coordinates: coords}.String()
	}
	return strings.Join(parts, " ")
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
