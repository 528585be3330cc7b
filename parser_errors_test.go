package linechart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type parseErrorTest struct {
	description string
	d           string
	reason      string // substring of the InvalidPathError reason
}

var parseErrorTests = []parseErrorTest{
	{"unknown command letter", "M0,0 X10,10", "X"},
	{"empty string", "", "empty"},
	{"whitespace only", "  \t\n ", "empty"},
	{"leading coordinate", "10,10 L20,20", "before any command"},
	{"incomplete pair", "M0,0 L10", "groups of 2"},
	{"missing coordinates", "M0,0 L", "got none"},
	{"incomplete cubic group", "M0,0 C1,1 2,2 3,3 4,4", "groups of 6"},
	{"close with coordinates", "M0,0 Z5", "no coordinates"},
}

func TestParsePathInvalid(t *testing.T) {
	for _, test := range parseErrorTests {
		p, err := ParsePath(test.d)
		require.Nil(t, p, test.description)
		require.Error(t, err, test.description)

		ipe, ok := err.(*InvalidPathError)
		require.True(t, ok, "%s: expected *InvalidPathError, got %T", test.description, err)
		require.Contains(t, ipe.Reason, test.reason, test.description)
	}
}

func TestParsePathInvalidCoordinate(t *testing.T) {
	// a dangling exponent cannot be converted to a number
	p, err := ParsePath("M1e,2")
	require.Nil(t, p)
	require.Error(t, err)

	ice, ok := err.(*InvalidCoordinateError)
	require.True(t, ok, "expected *InvalidCoordinateError, got %T", err)
	require.Equal(t, "1e", ice.Token)
}
