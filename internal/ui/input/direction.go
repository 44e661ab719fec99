package input

// Direction defines the cardinal directions the users can use to move the card selection.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
	Left
	Right
)
