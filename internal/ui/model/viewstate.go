package model

import "github.com/leighmacdonald/zodiac-tui/internal/nav"

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	// Page is the active highest level page model. They represent a complete standalone "page" or "screen" that occupies the entire
	// page with the exception of the footer
	Page nav.Page

	// --------- h
	// | Page  | e
	// |       | i
	// |-------- g
	// |Footer | h
	// --------- t
	// W i d t h
	Content int
	Height  int
	Width   int
}
