package dispatch

import (
	"fmt"
)

// Error is the terminal failure of a routed operation.
type Error struct {
	Op       string
	Code     string
	Server   string
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	if e.Server == "" {
		return fmt.Sprintf("%s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s failed after %d attempt(s), last server %s: %v", e.Op, e.Attempts, e.Server, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
