// Package nav maps URL fragments to the page section that should be shown.
package nav

import "strings"

// DefaultSection is shown when the fragment is empty.
const DefaultSection = "pocetna"

// DefaultSections lists the page sections in display order.
var DefaultSections = []string{"pocetna", "racun", "transakcije", "stednja", "kredit", "kontakt"}

// Visibility is the display state of one section.
type Visibility struct {
	ID     string
	Active bool
}

// Hidden mirrors aria-hidden: every section that is not active is hidden.
func (v Visibility) Hidden() bool { return !v.Active }

// Router tracks the current section and the fragments pushed by navigation.
type Router struct {
	sections []string
	def      string
	current  string
	history  []string
}

// New creates a Router. An empty def falls back to DefaultSection.
func New(sections []string, def string) *Router {
	if def == "" {
		def = DefaultSection
	}
	s := make([]string, len(sections))
	copy(s, sections)
	return &Router{sections: s, def: def, current: def}
}

// Sections returns the known section ids.
func (r *Router) Sections() []string {
	out := make([]string, len(r.sections))
	copy(out, r.sections)
	return out
}

// Current returns the id of the section last shown.
func (r *Router) Current() string { return r.current }

// History returns the fragments pushed so far, oldest first.
func (r *Router) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Resolve turns a fragment such as "#racun" into a section id. An empty
// fragment resolves to the default section.
func (r *Router) Resolve(fragment string) string {
	if fragment == "" {
		fragment = "#" + r.def
	}
	return strings.Replace(fragment, "#", "", 1)
}

// Known reports whether id names a section.
func (r *Router) Known(id string) bool {
	for _, s := range r.sections {
		if s == id {
			return true
		}
	}
	return false
}

// Show resolves fragment and returns the state of every section. Exactly the
// matching section is active; an unknown fragment leaves all hidden.
func (r *Router) Show(fragment string) []Visibility {
	id := r.Resolve(fragment)
	r.current = id

	out := make([]Visibility, len(r.sections))
	for i, s := range r.sections {
		out[i] = Visibility{ID: s, Active: s == id}
	}
	return out
}

// Navigate follows a link href: it pushes "#id" onto the history and shows
// the section. A bare "#" navigates to the default section.
func (r *Router) Navigate(href string) []Visibility {
	id := strings.Replace(href, "#", "", 1)
	if id == "" {
		id = r.def
	}
	r.history = append(r.history, "#"+id)
	return r.Show("#" + id)
}
