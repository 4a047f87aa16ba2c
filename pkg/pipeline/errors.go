package pipeline

import (
	"errors"
)

// ErrNoImages is returned when a composer is invoked with an empty
// image path sequence. Nothing is written in that case.
var ErrNoImages = errors.New("no input images")
