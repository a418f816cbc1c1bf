package theme

import (
	"slices"
	"strings"
	"sync"
)

// StyleElement is a style element in the document head.
type StyleElement struct {
	ID   string
	Text string
}

// Document is an in-memory model of the parts of a browser document the theme touches: style
// elements in the head and the class list of the root element.
type Document struct {
	mu      sync.Mutex
	head    []StyleElement
	classes []string
	applied string
}

// NewDocument creates a document whose root starts with the given classes.
func NewDocument(classes ...string) *Document {
	return &Document{classes: slices.Clone(classes)}
}

// WriteStylesheet reuses the element with StyleElementID, creating it on first write.
func (d *Document) WriteStylesheet(css string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.head {
		if d.head[i].ID == StyleElementID {
			d.head[i].Text = css
			return nil
		}
	}
	d.head = append(d.head, StyleElement{ID: StyleElementID, Text: css})
	return nil
}

// SetThemeToken leaves the root with exactly one theme token.
func (d *Document) SetThemeToken(token string) error {
	if err := checkThemeToken(token); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.classes = replaceThemeToken(d.classes, d.applied, token)
	d.applied = token
	return nil
}

// StyleElements returns a copy of the head's style elements in insertion order.
func (d *Document) StyleElements() []StyleElement {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.head)
}

// StyleText returns the text of the style element with the given id.
func (d *Document) StyleText(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, el := range d.head {
		if el.ID == id {
			return el.Text, true
		}
	}
	return "", false
}

// RootClasses returns a copy of the root element's class list.
func (d *Document) RootClasses() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.classes)
}

// ClassName returns the root class list as a class attribute value.
func (d *Document) ClassName() string {
	return strings.Join(d.RootClasses(), " ")
}
