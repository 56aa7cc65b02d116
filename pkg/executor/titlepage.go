package executor

import (
	"html"
	"net/url"
)

const defaultTitle = "New Window"

// TitlePageURL returns a data: URL for a page whose document title and
// heading are both title. Opening it first makes the window's title match
// the bookmark folder.
func TitlePageURL(title string) string {
	if title == "" {
		title = defaultTitle
	}
	escaped := html.EscapeString(title)
	page := "<html><head><title>" + escaped + "</title></head><body><h1>" + escaped + "</h1></body></html>"
	return "data:text/html;charset=utf-8," + url.PathEscape(page)
}
