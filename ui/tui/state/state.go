package state

import (
	"fmt"

	"roscripthub/internal/catalog"
	"roscripthub/internal/hub"
)

// AppState holds the active page and the read-only tables the views draw from.
type AppState struct {
	Catalog catalog.Catalog
	Notice  string // feedback from the last command, cleared on navigation

	page hub.Page
}

// New returns a state showing start.
func New(c catalog.Catalog, start hub.Page) AppState {
	s := AppState{Catalog: c}
	s.Navigate(start)
	return s
}

func (s AppState) Page() hub.Page {
	return s.page
}

// Navigate switches the active page. p must be one of hub.Pages().
func (s *AppState) Navigate(p hub.Page) {
	if !p.Valid() {
		panic(fmt.Sprintf("state: navigate to invalid page %d", int(p)))
	}
	s.page = p
	s.Notice = ""
}

// Apply folds a command result into the state. It reports whether the
// visible content changed.
func (s *AppState) Apply(res hub.Result) bool {
	if res.Navigate {
		s.Navigate(res.Target)
		return true
	}
	if res.Err != nil {
		s.Notice = res.Err.Error()
		return true
	}
	return false
}
