package reveal

import "errors"

var (
	// ErrConfig is returned for malformed setup. It is never recovered internally.
	ErrConfig = errors.New("invalid reveal configuration")
	// ErrInvalidRatio is returned when an observer reports a ratio outside of [0,1].
	ErrInvalidRatio = errors.New("visible ratio out of range")
	// ErrUnknownRegion means the observer and the selector have fallen out of sync.
	ErrUnknownRegion = errors.New("unknown region")
	// ErrUnknownElement means the observer and the fade scheduler have fallen out of sync.
	ErrUnknownElement = errors.New("unknown fade element")
	// ErrDuplicateElement is returned when registering an id twice.
	ErrDuplicateElement = errors.New("duplicate fade element")
	// ErrDisposed is returned for any use after Dispose.
	ErrDisposed = errors.New("component disposed")

	errAlreadyDisposed = errors.New("dispose called twice")
)
