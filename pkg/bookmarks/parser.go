package bookmarks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

const (
	// RootTitle is the title of the synthesized root folder.
	RootTitle = "ROOT"

	// ExportWrapperTitle is the folder name browsers wrap exports in.
	ExportWrapperTitle = "Bookmarks"
)

// Parse reads a Netscape bookmark export and returns its folder tree.
//
// Parsing is best effort: markup that does not follow the export layout is
// skipped rather than reported. Only read failures return an error.
func Parse(r io.Reader) (Folder, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Folder{}, fmt.Errorf("failed to parse bookmark HTML: %w", err)
	}

	root := Folder{Title: RootTitle}
	if dl := findElement(doc, "dl"); dl != nil {
		root.Children = parseList(dl)
	}

	return unwrapRoot(root), nil
}

// ParseFile reads a bookmark file from disk. Files with a .json extension
// are decoded with DecodeJSON, everything else is treated as HTML.
func ParseFile(path string) (Folder, error) {
	file, err := os.Open(path)
	if err != nil {
		return Folder{}, fmt.Errorf("failed to open bookmark file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DecodeJSON(file)
	}
	return Parse(file)
}

// unwrapRoot drops the standard "Bookmarks" wrapper folder when it is the
// only thing the synthesized root holds.
func unwrapRoot(root Folder) Folder {
	if len(root.Children) != 1 {
		return root
	}
	if folder, ok := root.Children[0].(Folder); ok && folder.Title == ExportWrapperTitle {
		return folder
	}
	return root
}

// parseList converts the <dt> children of a <dl> into nodes.
func parseList(dl *html.Node) []Node {
	var nodes []Node
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "dt" {
			continue
		}
		if node, ok := parseEntry(c); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// parseEntry turns a single <dt> into a folder (it has an <h3>) or a link
// (it has an <a>).
func parseEntry(dt *html.Node) (Node, bool) {
	if h3 := findElement(dt, "h3"); h3 != nil {
		folder := Folder{Title: textContent(h3)}
		if dl := findElement(dt, "dl"); dl != nil {
			folder.Children = parseList(dl)
		}
		return folder, true
	}

	if a := findElement(dt, "a"); a != nil {
		return Link{Title: textContent(a), URL: attr(a, "href")}, true
	}

	return nil, false
}

// findElement returns the first descendant element of n named tag, in
// document order. n itself is not considered.
func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates every text node below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
