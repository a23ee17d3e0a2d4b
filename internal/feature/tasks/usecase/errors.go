// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

// ErrTaskNotFound is returned when no task matches both the requested id and
// the caller's identity. A task owned by another user is indistinguishable
// from a task that does not exist.
var ErrTaskNotFound = errors.New("task not found")
