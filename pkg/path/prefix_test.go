package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelab/dtab/pkg/path"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantElems []string
	}{
		{
			name:      "simple path",
			text:      "/foo/bar/baz",
			wantElems: []string{"foo", "bar", "baz"},
		},
		{
			name:      "path with wildcard",
			text:      "/foo/*/bar/baz",
			wantElems: []string{"foo", "*", "bar", "baz"},
		},
		{
			name:      "single element",
			text:      "/iceCreamStore",
			wantElems: []string{"iceCreamStore"},
		},
		{
			name:      "doubled slashes are dropped",
			text:      "/foo//bar",
			wantElems: []string{"foo", "bar"},
		},
		{
			name:      "trailing slash is dropped",
			text:      "/foo/bar/",
			wantElems: []string{"foo", "bar"},
		},
		{
			name:      "no leading slash",
			text:      "foo/bar",
			wantElems: []string{"foo", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := path.ParsePrefix(tt.text)
			require.NoError(t, err)

			elems := p.Elems()
			require.Len(t, elems, len(tt.wantElems))
			for i, want := range tt.wantElems {
				assert.Equal(t, want, elems[i].String())
				assert.Equal(t, want == "*", elems[i].IsWildcard())
			}
		})
	}
}

func TestParsePrefixDegenerate(t *testing.T) {
	// "", "/", and "//" all parse to the same empty prefix, which renders
	// as the empty string rather than "/". The non-round-trip is deliberate.
	for _, text := range []string{"", "/", "//"} {
		p, err := path.ParsePrefix(text)
		require.NoError(t, err, "parsing %q", text)
		assert.True(t, p.IsEmpty())
		assert.Equal(t, 0, p.Len())
		assert.Equal(t, "", p.String())
	}
}

func TestParsePrefixFailsFast(t *testing.T) {
	_, err := path.ParsePrefix("/ok/bad segment/also ok")
	require.Error(t, err)

	var labelErr *path.LabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, path.InvalidCharacter, labelErr.Kind)
	assert.Equal(t, "bad segment", labelErr.Elem)
	assert.Equal(t, 3, labelErr.Pos, "position is relative to the segment")
}

func TestPrefixRoundTrip(t *testing.T) {
	for _, text := range []string{
		"/foo/bar/baz",
		"/foo/*/baz",
		"/iceCreamStore",
		"/a",
		"/srv-0.9:8080/us-west/*",
	} {
		p, err := path.ParsePrefix(text)
		require.NoError(t, err)
		assert.Equal(t, text, p.String())
	}
}

func TestPrefixJoin(t *testing.T) {
	a, err := path.ParsePrefix("/foo")
	require.NoError(t, err)
	b, err := path.ParsePrefix("/bar/baz")
	require.NoError(t, err)

	joined := a.Join(b)
	assert.Equal(t, "/foo/bar/baz", joined.String())

	// Join leaves the operands untouched.
	assert.Equal(t, "/foo", a.String())
	assert.Equal(t, "/bar/baz", b.String())

	empty := path.Prefix{}
	assert.Equal(t, "/foo", a.Join(empty).String())
	assert.Equal(t, "/foo", empty.Join(a).String())
}

func TestPrefixEqual(t *testing.T) {
	a, _ := path.ParsePrefix("/foo/*/bar")
	b, _ := path.ParsePrefix("/foo/*/bar")
	c, _ := path.ParsePrefix("/foo/bar")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestParseElem(t *testing.T) {
	elem, err := path.ParseElem("*")
	require.NoError(t, err)
	assert.True(t, elem.IsWildcard())
	assert.Equal(t, "*", elem.String())

	elem, err = path.ParseElem("foo")
	require.NoError(t, err)
	assert.False(t, elem.IsWildcard())
	assert.Equal(t, "foo", elem.Label().String())

	// "*x" is not the wildcard, so it falls through to label validation.
	_, err = path.ParseElem("*x")
	require.Error(t, err)
	var labelErr *path.LabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, path.InvalidCharacter, labelErr.Kind)
	assert.Equal(t, '*', labelErr.Char)
	assert.Equal(t, 0, labelErr.Pos)
}

func TestPrefixMarshalText(t *testing.T) {
	p, err := path.ParsePrefix("/foo/bar")
	require.NoError(t, err)

	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "/foo/bar", string(text))
}
