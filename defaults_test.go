package argot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaultsJSON(t *testing.T) {
	p := newTestParser()
	var num int
	var verbose bool
	var tag string
	var files []string
	p.Add(&num, "--num").NArgs(1)
	p.Add(&verbose, "--verbose")
	p.Add(&tag, "-t").NArgs(1)
	p.Add(&files, "file")

	doc := []byte(`{"num": 7, "verbose": true, "t": "latest", "file": "a.txt"}`)
	require.NoError(t, p.SetDefaultsJSON(doc))

	res := p.Parse([]string{})
	assert.True(t, res.Ok())
	assert.Equal(t, 7, num)
	assert.True(t, verbose)
	assert.Equal(t, "latest", tag)
	assert.Equal(t, []string{"a.txt"}, files)
}

func TestSetDefaultsJSONAssignedValueWins(t *testing.T) {
	p := newTestParser()
	var num int
	p.Add(&num, "--num").NArgs(1)
	require.NoError(t, p.SetDefaultsJSON([]byte(`{"num": 7}`)))

	res := p.Parse([]string{"--num", "3"})
	assert.True(t, res.Ok())
	assert.Equal(t, 3, num)
}

func TestSetDefaultsJSONOverridesAbsent(t *testing.T) {
	p := newTestParser()
	var num, other int
	p.Add(&num, "--num").NArgs(1).Absent("1")
	p.Add(&other, "--other").NArgs(1).Absent("2")
	require.NoError(t, p.SetDefaultsJSON([]byte(`{"num": 7}`)))

	res := p.Parse([]string{})
	assert.True(t, res.Ok())
	assert.Equal(t, 7, num)
	// Definitions without a document key keep their configured default.
	assert.Equal(t, 2, other)
}

func TestSetDefaultsJSONInvalidDocument(t *testing.T) {
	p := newTestParser()
	err := p.SetDefaultsJSON([]byte(`{"num": `))
	assert.ErrorIs(t, err, ErrInvalidDefaultsDocument)
}
