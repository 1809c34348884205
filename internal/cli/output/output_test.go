package output

import (
	"bytes"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{name: "auto on tty", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped", mode: ModeAuto, isTTY: false, want: ModeMarkdown},
		{name: "empty defaults to auto", mode: "", isTTY: false, want: ModeMarkdown},
		{name: "explicit json", mode: ModeJSON, isTTY: true, want: ModeJSON},
		{name: "explicit text piped", mode: ModeText, isTTY: false, want: ModeText},
		{name: "explicit plain", mode: ModePlain, isTTY: true, want: ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.isTTY, r.IsTTY())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, Mode("auto"))
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_NoANSIWhenPiped(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Header(1, "Result")
	r.Success("done")
	r.Muted("quiet")
	r.Warning("careful")
	r.Error("broken")

	assert.False(t, ansiPattern.MatchString(out.String()), "unexpected ANSI codes in %q", out.String())
	assert.False(t, ansiPattern.MatchString(errOut.String()), "unexpected ANSI codes in %q", errOut.String())
	assert.Contains(t, out.String(), "Result")
	assert.Contains(t, out.String(), "done")
	assert.Contains(t, errOut.String(), "Warning: careful")
	assert.Contains(t, errOut.String(), "Error: broken")
}

func TestRenderer_HeaderMarkdown(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)

	r.Header(2, "Add")
	assert.Equal(t, "## Add\n", out.String())
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
}

func TestRenderer_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	err := r.JSON(ExecuteOutput{
		Operation: "Add",
		A:         2,
		B:         3,
		Result:    5,
		Formatted: "5",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"operation":"Add","a":2,"b":3,"result":5,"formatted":"5"}`, out.String())
}

func TestRenderer_JSON_NonFinite(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	err := r.JSON(ExecuteOutput{
		Operation: "Add",
		A:         Number(math.Inf(1)),
		B:         Number(math.Inf(-1)),
		Result:    Number(math.NaN()),
		Formatted: "NaN",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"operation":"Add","a":"+Inf","b":"-Inf","result":"NaN","formatted":"NaN"}`, out.String())
}

func TestRenderer_YAML(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeYAML)

	err := r.YAML(ExecuteOutput{
		Operation: "Multiply",
		A:         -1.5,
		B:         4,
		Result:    -6,
		Formatted: "-6",
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "operation: Multiply")
	assert.Contains(t, out.String(), "a: -1.5")
	assert.Contains(t, out.String(), "result: -6")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{v: 5, precision: 6, want: "5"},
		{v: -6, precision: 6, want: "-6"},
		{v: 1.0 / 3.0, precision: 6, want: "0.333333"},
		{v: 1.0 / 3.0, precision: -1, want: "0.3333333333333333"},
		{v: 1234567, precision: 6, want: "1.23457e+06"},
		{v: math.Inf(1), precision: 6, want: "+Inf"},
		{v: math.Inf(-1), precision: 6, want: "-Inf"},
		{v: math.NaN(), precision: 6, want: "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.precision), "FormatNumber(%v, %d)", tt.v, tt.precision)
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	b, err := Number(0.1).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "0.1", string(b))

	b, err = Number(1e21).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "1e+21", string(b))
}
