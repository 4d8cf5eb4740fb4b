package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/stipendium/internal/models"
)

// ErrRejected matches every *RejectedError. A rejected create leaves the
// store untouched.
var ErrRejected = errors.New("create rejected")

type RejectedError struct {
	Entity Entity
	Fields []string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected: missing %s", e.Entity, strings.Join(e.Fields, ", "))
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

func reject(entity Entity, err error) error {
	return &RejectedError{Entity: entity, Fields: models.MissingFields(err)}
}
