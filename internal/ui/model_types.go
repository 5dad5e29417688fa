// internal/ui/model_types.go
package ui

// Focus is the pane that receives keystrokes.
type Focus string

const (
	FocusEditor      Focus = "EDIT"
	FocusSuggestions Focus = "PICK"
)
