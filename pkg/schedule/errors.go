package schedule

import (
	"errors"
)

// ErrInvalidDate flags a date argument that fails the strict DD-MM-YYYY parse.
var ErrInvalidDate = errors.New("invalid date")

// ArgCountError flags a command invoked with the wrong number of
// positional arguments. Expected is human readable ("2", "0 or 1").
type ArgCountError struct {
	Expected string
}

func (e ArgCountError) Error() string {
	return "arguments must be exactly " + e.Expected
}

// NotFoundError flags an id that does not resolve to a stored event.
type NotFoundError struct {
	Noun string
}

func (e NotFoundError) Error() string {
	return e.Noun + " not found"
}
