package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(stdoutDefault, stderrDefault)
		SetGlobalFlags(false, false, false)
	})
	return &out, &errOut
}

var (
	stdoutDefault = stdout
	stderrDefault = stderr
)

func TestPrintHelpersPlain(t *testing.T) {
	out, errOut := captureOutput(t)
	SetGlobalFlags(false, true, false)

	PrintSuccess("saved %d items", 3)
	PrintInfo("hello")
	PrintWarning("careful")
	PrintError("boom")

	assert.Equal(t, "OK: saved 3 items\nINFO: hello\n", out.String())
	assert.Equal(t, "WARNING: careful\nERROR: boom\n", errOut.String())
}

func TestPrintHelpersQuiet(t *testing.T) {
	out, errOut := captureOutput(t)
	SetGlobalFlags(true, true, false)

	PrintSuccess("hidden")
	PrintInfo("hidden")
	PrintError("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			captureOutput(t)
			SetInput(strings.NewReader(tt.input))

			got, err := Confirm("Overwrite?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmSkipped(t *testing.T) {
	captureOutput(t)
	SetGlobalFlags(false, false, true)

	got, err := Confirm("Overwrite?", false)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestResolveItem(t *testing.T) {
	catalog := []models.ResultItem{
		models.Person{Name: "Caroline Dribsson"},
		models.Folder{Name: "Dribbble Folder"},
		models.File{Name: "dribbble_animation.avi"},
	}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr string
	}{
		{name: "exact name ignores case", ref: "caroline dribsson", want: "Caroline Dribsson"},
		{name: "slug", ref: "dribbble-folder", want: "Dribbble Folder"},
		{name: "unique substring", ref: "animation", want: "dribbble_animation.avi"},
		{name: "ambiguous", ref: "dribbble", wantErr: "multiple items"},
		{name: "missing", ref: "nobody", wantErr: "no item found"},
		{name: "empty", ref: " ", wantErr: "cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := ResolveItem(catalog, tt.ref)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, models.NameOf(item))
		})
	}
}

func TestOutputResults(t *testing.T) {
	data := map[string]int{"All": 2}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.JSONEq(t, `{"All": 2}`, buf.String())

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.Equal(t, "All: 2\n", buf.String())

	assert.Error(t, OutputResults(&buf, "xml", data))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("TYPE", "NAME")
	table.Row("person", "Caroline Dribsson")
	table.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TYPE"))
	assert.True(t, strings.HasPrefix(lines[1], "----"))
	assert.Contains(t, lines[2], "Caroline Dribsson")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "Design ...", TruncateString("Design Team Discussion", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestFormatCounts(t *testing.T) {
	counts := models.Counts{All: 3, Files: 2, People: 1}
	assert.Equal(t, "All 3 · Files 2 · People 1", FormatCounts(counts, []models.Tab{models.TabAll, "Files", "People"}))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("xml"))

	facet, err := ParseFacetArg("chat")
	require.NoError(t, err)
	assert.Equal(t, models.FacetChats, facet)

	_, err = ParseFacetArg("All")
	assert.ErrorContains(t, err, "cannot be toggled")

	_, err = ParseFacetArg("photos")
	assert.Error(t, err)

	tab, err := ParseTabArg("all")
	require.NoError(t, err)
	assert.Equal(t, models.TabAll, tab)

	_, err = ParseTabArg("photos")
	assert.Error(t, err)

	assert.NoError(t, ValidateAddr(":8088"))
	assert.NoError(t, ValidateAddr("127.0.0.1:9000"))
	assert.Error(t, ValidateAddr("8088"))
}
