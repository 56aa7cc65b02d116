package bookmarks

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Filter drops links whose URL does not pass its glob patterns.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFilter compiles include and exclude patterns. With no include patterns
// every URL is included; exclude patterns always take precedence.
func NewFilter(include, exclude []string) (*Filter, error) {
	f := &Filter{}

	for _, pattern := range include {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern '%s': %w", pattern, err)
		}
		f.include = append(f.include, g)
	}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern '%s': %w", pattern, err)
		}
		f.exclude = append(f.exclude, g)
	}

	return f, nil
}

// Allows reports whether a link with this URL is kept.
func (f *Filter) Allows(url string) bool {
	for _, pattern := range f.exclude {
		if pattern.Match(url) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, pattern := range f.include {
		if pattern.Match(url) {
			return true
		}
	}

	return false
}

// IsEmpty reports whether the filter has no patterns at all.
func (f *Filter) IsEmpty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0
}

// Apply returns a copy of the tree without the links the filter rejects.
// Folders are always kept, even when all their links are dropped.
func (f *Filter) Apply(root Folder) Folder {
	out := Folder{Title: root.Title}
	for _, child := range root.Children {
		switch c := child.(type) {
		case Folder:
			out.Children = append(out.Children, f.Apply(c))
		case Link:
			if f.Allows(c.URL) {
				out.Children = append(out.Children, c)
			}
		}
	}
	return out
}
