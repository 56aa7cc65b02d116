package bookmarks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file. -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1700000000" PERSONAL_TOOLBAR_FOLDER="true">Bookmarks bar</H3>
    <DL><p>
        <DT><A HREF="https://go.dev/" ADD_DATE="1700000001">Go</A>
        <DT><H3 ADD_DATE="1700000002">Tools[red][collapsed]</H3>
        <DL><p>
            <DT><A HREF="https://x.example/">X</A>
            <DT><A HREF="https://y.example/">Y</A>
        </DL><p>
    </DL><p>
    <DT><A HREF="https://top.example/">Top</A>
</DL><p>
`

func TestParse_ChromeExport(t *testing.T) {
	root, err := Parse(strings.NewReader(chromeExport))
	require.NoError(t, err)

	assert.Equal(t, RootTitle, root.Title)
	require.Len(t, root.Children, 2)

	bar, ok := root.Children[0].(Folder)
	require.True(t, ok, "first child should be a folder")
	assert.Equal(t, "Bookmarks bar", bar.Title)
	require.Len(t, bar.Children, 2)
	assert.Equal(t, Link{Title: "Go", URL: "https://go.dev/"}, bar.Children[0])

	tools, ok := bar.Children[1].(Folder)
	require.True(t, ok, "nested folder should be a folder")
	assert.Equal(t, "Tools[red][collapsed]", tools.Title)
	assert.Equal(t, []Node{
		Link{Title: "X", URL: "https://x.example/"},
		Link{Title: "Y", URL: "https://y.example/"},
	}, tools.Children)

	assert.Equal(t, Link{Title: "Top", URL: "https://top.example/"}, root.Children[1])
}

func TestParse_UnwrapsBookmarksFolder(t *testing.T) {
	input := `<DL><p>
	<DT><H3>Bookmarks</H3>
	<DL><p>
		<DT><A HREF="https://a.example/">A</A>
	</DL><p>
</DL><p>`

	root, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "Bookmarks", root.Title)
	assert.Equal(t, []Node{Link{Title: "A", URL: "https://a.example/"}}, root.Children)
}

func TestParse_KeepsRootWhenWrapperHasSiblings(t *testing.T) {
	input := `<DL><p>
	<DT><H3>Bookmarks</H3>
	<DL><p></DL><p>
	<DT><A HREF="https://b.example/">B</A>
</DL><p>`

	root, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, RootTitle, root.Title)
	assert.Len(t, root.Children, 2)
}

func TestParse_BestEffort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Folder
	}{
		{
			name:  "no list at all",
			input: `<html><body><p>nothing here</p></body></html>`,
			want:  Folder{Title: RootTitle},
		},
		{
			name:  "empty input",
			input: "",
			want:  Folder{Title: RootTitle},
		},
		{
			name:  "folder without nested list",
			input: `<DL><DT><H3>Empty</H3><DT><A HREF="u">L</A></DL>`,
			want: Folder{Title: RootTitle, Children: []Node{
				Folder{Title: "Empty"},
				Link{Title: "L", URL: "u"},
			}},
		},
		{
			name:  "dt without heading or anchor is skipped",
			input: `<DL><DT>just text<DT><A HREF="u">L</A></DL>`,
			want: Folder{Title: RootTitle, Children: []Node{
				Link{Title: "L", URL: "u"},
			}},
		},
		{
			name:  "unclosed tags",
			input: `<DL><DT><A HREF="https://a">A</A><DT><A HREF="https://b">B`,
			want: Folder{Title: RootTitle, Children: []Node{
				Link{Title: "A", URL: "https://a"},
				Link{Title: "B", URL: "https://b"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	htmlPath := filepath.Join(dir, "export.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(chromeExport), 0600))

	jsonPath := filepath.Join(dir, "tree.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"type":"folder","title":"J","children":[{"type":"link","title":"L","url":"u"}]}`), 0600))

	fromHTML, err := ParseFile(htmlPath)
	require.NoError(t, err)
	assert.Len(t, fromHTML.Children, 2)

	fromJSON, err := ParseFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, NewFolder("J", Link{Title: "L", URL: "u"}), fromJSON)

	_, err = ParseFile(filepath.Join(dir, "missing.html"))
	assert.Error(t, err)
}
