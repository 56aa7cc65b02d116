package bookmarks

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	nodeTypeFolder = "folder"
	nodeTypeLink   = "link"
)

// jsonNode is the serialized form of a tree node.
type jsonNode struct {
	Type     string     `json:"type"`
	Title    string     `json:"title"`
	URL      string     `json:"url,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

// DecodeJSON reads a tree in the {"type","title","url","children"} form.
// Nodes with an unrecognized type are skipped. The top-level node must be a
// folder.
func DecodeJSON(r io.Reader) (Folder, error) {
	var top jsonNode
	if err := json.NewDecoder(r).Decode(&top); err != nil {
		return Folder{}, fmt.Errorf("failed to decode bookmark JSON: %w", err)
	}
	if top.Type != nodeTypeFolder {
		return Folder{}, fmt.Errorf("bookmark JSON root must be a folder, got %q", top.Type)
	}
	return fromJSON(top), nil
}

// EncodeJSON writes the tree in the form DecodeJSON reads.
func EncodeJSON(w io.Writer, root Folder) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(root)); err != nil {
		return fmt.Errorf("failed to encode bookmark JSON: %w", err)
	}
	return nil
}

func fromJSON(n jsonNode) Folder {
	folder := Folder{Title: n.Title}
	for _, child := range n.Children {
		switch child.Type {
		case nodeTypeFolder:
			folder.Children = append(folder.Children, fromJSON(child))
		case nodeTypeLink:
			folder.Children = append(folder.Children, Link{Title: child.Title, URL: child.URL})
		}
	}
	return folder
}

func toJSON(f Folder) jsonNode {
	n := jsonNode{Type: nodeTypeFolder, Title: f.Title, Children: []jsonNode{}}
	for _, child := range f.Children {
		switch c := child.(type) {
		case Folder:
			n.Children = append(n.Children, toJSON(c))
		case Link:
			n.Children = append(n.Children, jsonNode{Type: nodeTypeLink, Title: c.Title, URL: c.URL})
		}
	}
	return n
}
