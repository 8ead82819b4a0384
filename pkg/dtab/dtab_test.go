package dtab_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/routelab/dtab/pkg/dtab"
	"github.com/routelab/dtab/pkg/nametree"
	"github.com/routelab/dtab/pkg/path"
)

func mustPrefix(t *testing.T, text string) path.Prefix {
	t.Helper()
	p, err := path.ParsePrefix(text)
	require.NoError(t, err)
	return p
}

func TestDentryString(t *testing.T) {
	d := dtab.NewDentry(mustPrefix(t, "/iceCreamStore"), nametree.From("/smitten"))
	assert.Equal(t, "/iceCreamStore => /smitten;", d.String())
}

func TestDentryAltChain(t *testing.T) {
	dst := nametree.OrString(
		nametree.OrString(
			nametree.OrString(nametree.From("/smitten"), "/humphrys"),
			"/birite"),
		"/three-twins")
	d := dtab.NewDentry(mustPrefix(t, "/iceCreamStore"), dst)

	assert.Equal(t,
		"/iceCreamStore => /smitten | /humphrys | /birite | /three-twins;",
		d.String())
}

func TestDentryWeightedUnion(t *testing.T) {
	dst := nametree.Union(
		nametree.WeighString(0.7, "/smitten"),
		nametree.WeighString(0.3, "/humphrys"))
	d := dtab.NewDentry(mustPrefix(t, "/iceCreamStore"), dst)

	assert.Equal(t, "/iceCreamStore => 0.7 * /smitten & 0.3 * /humphrys;", d.String())
}

func TestDentryEmptyPrefix(t *testing.T) {
	// The degenerate prefix renders as nothing, so the rule starts at "=>".
	d := dtab.NewDentry(mustPrefix(t, "/"), nametree.From("/fallback"))
	assert.Equal(t, " => /fallback;", d.String())
}

func TestDtabOrdering(t *testing.T) {
	first := dtab.NewDentry(mustPrefix(t, "/smitten"), nametree.From("/USA/CA/SF/Harrison/2790"))
	second := dtab.NewDentry(mustPrefix(t, "/iceCreamStore"),
		nametree.OrString(nametree.From("/humphrys"), "/smitten"))

	table := dtab.New(first, second)
	assert.Equal(t,
		"/smitten => /USA/CA/SF/Harrison/2790;\n"+
			"/iceCreamStore => /humphrys | /smitten;\n",
		table.String())
}

func TestDtabPreservesDuplicates(t *testing.T) {
	entry := dtab.NewDentry(mustPrefix(t, "/a"), nametree.From("/b"))
	table := dtab.New(entry, entry, entry)

	assert.Len(t, table, 3)
	assert.Equal(t, "/a => /b;\n/a => /b;\n/a => /b;\n", table.String())
}

func TestEmptyDtab(t *testing.T) {
	assert.Equal(t, "", dtab.New().String())
	assert.Equal(t, "", dtab.Dtab(nil).String())
}

func TestDtabAppend(t *testing.T) {
	a := dtab.NewDentry(mustPrefix(t, "/a"), nametree.From("/x"))
	b := dtab.NewDentry(mustPrefix(t, "/b"), nametree.From("/y"))

	base := dtab.New(a)
	grown := base.Append(b)

	assert.Len(t, base, 1, "Append must not mutate the receiver")
	assert.Len(t, grown, 2)
	assert.Equal(t, "/a => /x;\n/b => /y;\n", grown.String())
}

func TestDtabMarshalJSON(t *testing.T) {
	table := dtab.New(
		dtab.NewDentry(mustPrefix(t, "/iceCreamStore"), nametree.From("/smitten")))

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.Equal(t, `"/iceCreamStore => /smitten;\n"`, string(out))
}

func TestDtabMarshalYAML(t *testing.T) {
	table := dtab.New(
		dtab.NewDentry(mustPrefix(t, "/smitten"), nametree.From("/USA/CA/SF/Harrison/2790")),
		dtab.NewDentry(mustPrefix(t, "/iceCreamStore"),
			nametree.OrString(nametree.From("/humphrys"), "/smitten")))

	doc := struct {
		Routes dtab.Dtab `yaml:"routes"`
	}{Routes: table}

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t,
		"routes: |\n"+
			"    /smitten => /USA/CA/SF/Harrison/2790;\n"+
			"    /iceCreamStore => /humphrys | /smitten;\n",
		string(out))
}
