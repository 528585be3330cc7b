package linechart

import (
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// ParsePath scans a path description into its command sequence. The
// returned Path is fresh on every call.
//
// Implicit repetition (extra coordinate groups after one command
// letter, like "L10,10 20,20") is kept as one oversized Command;
// ToAbsolute expands it into fixed-arity commands.
func ParsePath(d string) (*Path, error) {
	if strings.TrimSpace(d) == "" {
		return nil, &InvalidPathError{Path: d, Reason: "empty path description"}
	}

	l, _ := gl.Lex("path", d)
	p := &Path{}
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			if len(p.Commands) == 0 {
				return nil, &InvalidPathError{Path: d, Reason: "no drawing commands"}
			}
			return p, nil
		case gl.ItemError:
			return nil, &InvalidPathError{Path: d, Reason: i.Value}
		case gl.ItemLetter:
			cmd, err := parseCommand(l, i, d)
			if err != nil {
				return nil, err
			}
			p.Commands = append(p.Commands, cmd)
		case gl.ItemNumber:
			return nil, &InvalidPathError{Path: d, Reason: fmt.Sprintf("coordinate %q before any command letter", i.Value)}
		default:
			// whitespace and separators between commands
		}
	}
}

// parseCommand reads one command letter and every coordinate that
// follows it, as one entry.
func parseCommand(l *gl.Lexer, i gl.Item, d string) (Command, error) {
	ct, relative, ok := commandTypeForLetter(i.Value)
	if !ok {
		return Command{}, &InvalidPathError{Path: d, Reason: fmt.Sprintf("unknown command letter %q", i.Value)}
	}

	cmd := Command{Type: ct, Relative: relative, SourceText: i.Value}
	l.ConsumeWhiteSpace()
	for l.PeekItem().Type == gl.ItemNumber {
		v, tok, err := parseCoordinate(l)
		if err != nil {
			return Command{}, err
		}
		cmd.Coordinates = append(cmd.Coordinates, v)
		cmd.SourceText += " " + tok
		l.ConsumeWhiteSpace()
		l.ConsumeComma()
		l.ConsumeWhiteSpace()
	}

	if err := checkCoordinateCount(cmd, d); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

// parseCoordinate reads one numeric token. The lexer splits
// exponential notation into number, letter and number items; the
// pieces are stitched back together before conversion.
func parseCoordinate(l *gl.Lexer) (float64, string, error) {
	tok := l.NextItem().Value
	if p := l.PeekItem(); p.Type == gl.ItemLetter && (p.Value == "e" || p.Value == "E") {
		tok += l.NextItem().Value
		if l.PeekItem().Type == gl.ItemNumber {
			tok += l.NextItem().Value
		}
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, tok, &InvalidCoordinateError{Token: tok}
	}
	return v, tok, nil
}

// checkCoordinateCount rejects commands whose coordinate count cannot
// be split into complete groups of the command's arity.
func checkCoordinateCount(cmd Command, d string) error {
	n := len(cmd.Coordinates)
	if cmd.Type == ClosePath {
		if n != 0 {
			return &InvalidPathError{Path: d, Reason: fmt.Sprintf("%s takes no coordinates, got %d", cmd.Type, n)}
		}
		return nil
	}
	arity := cmd.Type.Arity()
	if n == 0 {
		return &InvalidPathError{Path: d, Reason: fmt.Sprintf("%s expects %d coordinates, got none", cmd.Type, arity)}
	}
	if n%arity != 0 {
		return &InvalidPathError{Path: d, Reason: fmt.Sprintf("%s expects coordinates in groups of %d, got %d", cmd.Type, arity, n)}
	}
	return nil
}
