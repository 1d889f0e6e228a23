package views

import (
	"roscripthub/internal/reputation"
	"roscripthub/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	AnimCursor  float64 // navigation underline position, in Pages() index units
	SpinnerView string
	Reputation  reputation.Source
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
