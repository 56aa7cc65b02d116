// Package bookmarks models a browser bookmark export as an ordered tree of
// folders and links, and reads that tree from the Netscape bookmark HTML
// format or from its JSON form.
package bookmarks

// Node is an element of a bookmark tree. It is either a Link or a Folder.
type Node interface {
	bookmarkNode()
}

// Link is a single bookmarked URL.
type Link struct {
	Title string
	URL   string
}

// Folder is a named, ordered collection of nodes.
type Folder struct {
	Title    string
	Children []Node
}

func (Link) bookmarkNode()   {}
func (Folder) bookmarkNode() {}

// IsMixed reports whether the folder directly contains at least one folder.
// A folder that is not mixed is a leaf folder.
func (f Folder) IsMixed() bool {
	for _, child := range f.Children {
		if _, ok := child.(Folder); ok {
			return true
		}
	}
	return false
}

// Links returns the folder's direct link children in order.
func (f Folder) Links() []Link {
	var links []Link
	for _, child := range f.Children {
		if link, ok := child.(Link); ok {
			links = append(links, link)
		}
	}
	return links
}

// NewFolder is a convenience constructor used when building trees by hand.
func NewFolder(title string, children ...Node) Folder {
	return Folder{Title: title, Children: children}
}
