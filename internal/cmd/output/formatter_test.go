package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	require.NoError(t, f.Format(&buf, map[string]string{"name": "mod.a"}))
	assert.JSONEq(t, `{"name":"mod.a"}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	require.NoError(t, f.Format(&buf, map[string]string{"name": "mod.a"}))
	assert.Contains(t, buf.String(), "name: mod.a")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	data := Data{
		Headers: []string{"name", "latest"},
		Rows:    [][]string{{"mod.a", "1.2.0"}},
	}
	require.NoError(t, f.Format(&buf, data))
	assert.Contains(t, buf.String(), "mod.a")
	assert.Contains(t, buf.String(), "Name")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	require.NoError(t, f.Format(&buf, map[string]int{"modules": 3}))
	assert.JSONEq(t, `{"modules":3}`, buf.String())
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
