package list

import "fmt"

// InvariantError reports a violated container invariant: a caller bug, not
// a recoverable runtime condition. It is raised via panic, never returned.
// Production code must not recover it; tests covering the fatal paths may.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string {
	return "list: " + e.msg
}

func oops(format string, args ...any) {
	panic(&InvariantError{msg: fmt.Sprintf(format, args...)})
}
