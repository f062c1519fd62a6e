package shared

import "fmt"

var (
	// Validation errors
	ErrMissingTitle     = fmt.Errorf("song title is missing")
	ErrMissingName      = fmt.Errorf("playlist name is missing")
	ErrMissingID        = fmt.Errorf("missing id")
	ErrNegativeDuration = fmt.Errorf("duration is negative")

	// Lookup errors
	ErrSongNotFound     = fmt.Errorf("song not found")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
