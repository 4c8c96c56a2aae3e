package weekoff

import (
	"errors"
	"fmt"
)

var (
	ErrWeekOffNotFound = errors.New("week-off not found")
)

// AlreadyAssignedError rejects a duplicate (user, day) assignment, naming
// the existing assignee.
type AlreadyAssignedError struct {
	AssigneeName string
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("week-off for this day is already assigned to %s", e.AssigneeName)
}
