package diagnostic

import (
	"bytes"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func pos(file string, line, col int) token.Position {
	return token.Position{Filename: file, Line: line, Column: col}
}

func sample() *Diagnostics {
	var d Diagnostics
	d.AddInfo(CodeNonConstFormat, "format is not a constant", pos("b.go", 3, 2), "fmt.Printf")
	d.AddError(CodeTypeMismatch, "%d wants Integral, argument 0 is StringLike", pos("b.go", 3, 20), "safe-printf/printf.Sprintf", "use %s")
	d.AddError(CodeDanglingSpecifier, "%d has no argument", pos("a.go", 10, 5), "safe-printf/printf.Printf")
	d.AddWarning(CodeDroppedArgument, "argument 1 (Integral) has no verb", pos("a.go", 1, 1), "fmt.Printf")
	return &d
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostics_Basics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())

	d.Merge(*sample())
	assert.True(t, d.HasErrors())
	assert.Len(t, d.Errors, 2)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)

	assert.Equal(t, "b.go:3:20: [SP1001] %d wants Integral, argument 0 is StringLike", d.Errors[0].String())
	assert.Equal(t, "a.go:10:5: [SP1003] %d has no argument", d.Errors[1].String())
	assert.Equal(t, "[SP1005] argument 1 (Integral) has no verb", Diagnostic{
		Code:    CodeDroppedArgument,
		Message: "argument 1 (Integral) has no verb",
	}.String())
}

func TestDiagnostics_AllSorted(t *testing.T) {
	all := sample().All()
	require.Len(t, all, 4)

	assert.Equal(t, pos("a.go", 1, 1), all[0].Position)
	assert.Equal(t, pos("a.go", 10, 5), all[1].Position)
	assert.Equal(t, pos("b.go", 3, 2), all[2].Position)
	assert.Equal(t, pos("b.go", 3, 20), all[3].Position)
}

func TestDiagnostic_StringWithoutPosition(t *testing.T) {
	d := Diagnostic{Code: CodeExcessArgument, Message: "argument 1 has no verb"}
	assert.Equal(t, "[SP1004] argument 1 has no verb", d.String())

	d.Code = ""
	assert.Equal(t, "argument 1 has no verb", d.String())
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, sample(), PrettyOpts{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"a.go:1:1: warning[SP1005]: argument 1 (Integral) has no verb",
		"a.go:10:5: error[SP1003]: %d has no argument",
		"b.go:3:20: error[SP1001]: %d wants Integral, argument 0 is StringLike",
		"\thint: use %s",
	}, lines)
}

func TestPretty_InfosAndLimit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, sample(), PrettyOpts{Infos: true, Max: 3}))

	out := buf.String()
	assert.Contains(t, out, "info[SP2001]: format is not a constant")
	assert.NotContains(t, out, "SP1001")
	assert.Contains(t, out, "further diagnostics omitted (limit 3)")
}

func TestPretty_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, sample(), PrettyOpts{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))

	doc := buf.String()
	require.True(t, gjson.Valid(doc))

	assert.Equal(t, int64(2), gjson.Get(doc, "errors").Int())
	assert.Equal(t, int64(1), gjson.Get(doc, "warnings").Int())
	assert.Equal(t, int64(4), gjson.Get(doc, "diagnostics.#").Int())

	first := gjson.Get(doc, "diagnostics.0")
	assert.Equal(t, "warning", first.Get("severity").String())
	assert.Equal(t, "a.go", first.Get("file").String())

	mismatch := gjson.Get(doc, `diagnostics.#(code=="SP1001")`)
	require.True(t, mismatch.Exists())
	assert.Equal(t, uint64(3), mismatch.Get("line").Uint())
	assert.Equal(t, uint64(20), mismatch.Get("column").Uint())
	assert.Equal(t, "safe-printf/printf.Sprintf", mismatch.Get("func").String())
	assert.Equal(t, "use %s", mismatch.Get("suggestions.0").String())
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Diagnostics{}))

	doc := buf.String()
	assert.Equal(t, int64(0), gjson.Get(doc, "errors").Int())
	assert.True(t, gjson.Get(doc, "diagnostics").IsArray())
	assert.Equal(t, int64(0), gjson.Get(doc, "diagnostics.#").Int())
}
