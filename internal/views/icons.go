package views

import (
	"fmt"
	"html/template"
	"sort"
	"sync"
)

// Icon is an inline SVG glyph.
type Icon struct {
	Name    string
	ViewBox string
	Path    string
}

// IconRegistry holds the icons templates may reference by name.
type IconRegistry struct {
	mu    sync.RWMutex
	icons map[string]Icon
}

// Built-in glyphs. Only registered icons render.
var (
	IconDNA = Icon{
		Name:    "dna",
		ViewBox: "0 0 24 24",
		Path:    "M7 2v2c0 3 2 4.6 4.2 6L12 10.5l.8-.5C15 8.6 17 7 17 4V2h-2v2c0 .3 0 .7-.1 1H9.1C9 4.7 9 4.3 9 4V2H7zm2.9 5h4.2c-.5.6-1.2 1.1-2.1 1.7-.9-.6-1.6-1.1-2.1-1.7zM12 13.5l-.8.5C9 15.4 7 17 7 20v2h2v-2c0-.3 0-.7.1-1h5.8c.1.3.1.7.1 1v2h2v-2c0-3-2-4.6-4.2-6L12 13.5zM9.9 17c.5-.6 1.2-1.1 2.1-1.7.9.6 1.6 1.1 2.1 1.7H9.9z",
	}
	IconLaptopCode = Icon{
		Name:    "laptop-code",
		ViewBox: "0 0 24 24",
		Path:    "M4 4h16a1 1 0 011 1v10H3V5a1 1 0 011-1zm1 2v7h14V6H5zM1 17h22v1a2 2 0 01-2 2H3a2 2 0 01-2-2v-1zm8.3-9.7L10.7 8.7 9.4 10l1.3 1.3-1.4 1.4L6.6 10l2.7-2.7zm5.4 0L17.4 10l-2.7 2.7-1.4-1.4 1.3-1.3-1.3-1.3 1.4-1.4z",
	}
	IconPlus = Icon{
		Name:    "plus",
		ViewBox: "0 0 24 24",
		Path:    "M11 4h2v7h7v2h-7v7h-2v-7H4v-2h7z",
	}
)

// NewIconRegistry returns a registry holding icons.
func NewIconRegistry(icons ...Icon) *IconRegistry {
	r := &IconRegistry{icons: make(map[string]Icon, len(icons))}
	r.Add(icons...)
	return r
}

// DefaultIcons is the set the site registers at startup.
func DefaultIcons() *IconRegistry { return NewIconRegistry(IconDNA, IconLaptopCode, IconPlus) }

// Add registers icons, replacing any with the same name.
func (r *IconRegistry) Add(icons ...Icon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ic := range icons {
		r.icons[ic.Name] = ic
	}
}

// Names lists the registered icon names in order.
func (r *IconRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.icons))
	for n := range r.icons {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// SVG renders the named icon, or an error if it was never registered.
func (r *IconRegistry) SVG(name string) (template.HTML, error) {
	r.mu.RLock()
	ic, ok := r.icons[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("icon %q is not registered", name)
	}
	// Icon data is compiled in, never user input.
	return template.HTML(fmt.Sprintf(
		`<svg class="icon icon-%s" xmlns="http://www.w3.org/2000/svg" viewBox="%s" aria-hidden="true" fill="currentColor"><path d="%s"/></svg>`,
		template.HTMLEscapeString(ic.Name), template.HTMLEscapeString(ic.ViewBox), template.HTMLEscapeString(ic.Path),
	)), nil
}
