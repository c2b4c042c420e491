package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// run executes cmd in an initialized project and returns its stdout
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	messages := new(bytes.Buffer)
	cli.SetOutput(messages, messages)
	t.Cleanup(func() { cli.SetOutput(nil, nil) })

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		contains []string
		excludes []string
	}{
		{
			name:     "counts every tab offered by default",
			args:     []string{"drib"},
			contains: []string{"All 6 · Files 3 · People 3", "Caroline Dribsson", "Dribbble Folder"},
			excludes: []string{"Chats"},
		},
		{
			name:     "tab narrows the list but not the counts",
			args:     []string{"drib", "--tab", "people"},
			contains: []string{"All 6 · Files 3 · People 3", "Adam Cadribean"},
			excludes: []string{"dribbble_animation.avi"},
		},
		{
			name:     "no matches",
			args:     []string{"zzz"},
			contains: []string{"All 0", "No results found", "Try adjusting your search terms"},
		},
		{
			name:    "invalid tab",
			args:    []string{"drib", "--tab", "photos"},
			wantErr: "invalid tab",
		},
		{
			name:    "invalid output",
			args:    []string{"drib", "-o", "xml"},
			wantErr: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			setupInitializedProject(t)

			out, err := run(t, NewSearchCommand(), tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, expected := range tt.contains {
				assert.Contains(t, out, expected)
			}
			for _, excluded := range tt.excludes {
				assert.NotContains(t, out, excluded)
			}
		})
	}
}

func TestSearchCommandJSON(t *testing.T) {
	chdirTemp(t)
	setupInitializedProject(t)

	out, err := run(t, NewSearchCommand(), "DRIB", "--tab", "files", "-o", "json")
	require.NoError(t, err)

	var result SearchResultOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, models.Counts{All: 6, Files: 3, People: 3}, result.Counts)
	assert.Equal(t, models.Tab(models.FacetFiles), result.ActiveTab)
	require.Len(t, result.Results, 3)
	assert.Equal(t, "final_dribbble_presentation.jpg", result.Results[0].Name)
	assert.Equal(t, models.KindFolder, result.Results[2].Kind)
	assert.Equal(t, models.FacetFiles, result.Results[2].Facet)
	assert.Equal(t, "http://localhost:8088/folder/dribbble-folder", result.Results[2].Link)
}

func TestFacetsToggleCommand(t *testing.T) {
	chdirTemp(t)
	setupInitializedProject(t)

	out, err := run(t, NewFacetsCommand(), "toggle", "chats")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	settings, err := files.ReadSettings()
	require.NoError(t, err)
	assert.True(t, settings.Facets.Chats)
	assert.True(t, settings.Facets.Files)
	assert.Equal(t, models.DefaultSettings().Search, settings.Search)

	out, err = run(t, NewSearchCommand(), "design")
	require.NoError(t, err)
	assert.Contains(t, out, "Chats 1")

	out, err = run(t, NewFacetsCommand(), "toggle", "chats")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestFacetsToggleRejects(t *testing.T) {
	for _, arg := range []string{"All", "photos"} {
		t.Run(arg, func(t *testing.T) {
			chdirTemp(t)
			setupInitializedProject(t)

			_, err := run(t, NewFacetsCommand(), "toggle", arg)
			require.Error(t, err)

			settings, err := files.ReadSettings()
			require.NoError(t, err)
			assert.Equal(t, models.DefaultSettings().Facets, settings.Facets)
		})
	}
}

func TestFacetsListCommand(t *testing.T) {
	chdirTemp(t)
	setupInitializedProject(t)

	out, err := run(t, NewFacetsCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "All")
	assert.Contains(t, out, "always")

	out, err = run(t, NewFacetsCommand(), "list", "-o", "yaml")
	require.NoError(t, err)

	var rows []FacetOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []FacetOutput{
		{Facet: models.FacetFiles, Enabled: true},
		{Facet: models.FacetPeople, Enabled: true},
		{Facet: models.FacetChats, Enabled: false},
		{Facet: models.FacetLists, Enabled: false},
	}, rows)
}

func TestLinkCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{"exact name", []string{"Caroline", "Dribsson"}, "http://localhost:8088/person/caroline-dribsson\n", ""},
		{"slug", []string{"project-checklist"}, "http://localhost:8088/list/project-checklist\n", ""},
		{"unique substring", []string{"animation"}, "http://localhost:8088/file/dribbble_animation.avi\n", ""},
		{"ambiguous", []string{"dribbble"}, "", "multiple items match"},
		{"missing", []string{"nobody"}, "", "no item found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			setupInitializedProject(t)

			out, err := run(t, NewLinkCommand(), tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLinkCommandCopy(t *testing.T) {
	chdirTemp(t)
	setupInitializedProject(t)

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	_, err := run(t, NewLinkCommand(), "Design Team Discussion", "--copy")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8088/chat/design-team-discussion", copied)

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	_, err = run(t, NewLinkCommand(), "Design Team Discussion", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy to clipboard")
}

func TestCatalogCommand(t *testing.T) {
	chdirTemp(t)
	setupInitializedProject(t)

	out, err := run(t, NewCatalogCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Project Checklist")

	out, err = run(t, NewCatalogCommand(), "--facet", "people", "-o", "yaml")
	require.NoError(t, err)

	var doc models.CatalogFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	items, err := doc.Decode()
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, models.KindPerson, item.Kind())
	}
}

func TestCatalogCommandFallsBackToDemo(t *testing.T) {
	chdirTemp(t)
	setupProject(t)

	out, err := run(t, NewCatalogCommand(), "-o", "json")
	require.NoError(t, err)

	var doc models.CatalogFile
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Items, 8)
}

func TestServeCommandValidatesAddr(t *testing.T) {
	chdirTemp(t)
	setupInitializedProject(t)

	_, err := run(t, NewServeCommand(), "--addr", "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid listen address")
}
