package validator

import (
	"fmt"
)

type ErrInvalidField struct {
	error
	Field string
	Tag   string
}

func NewErrInvalidField(field, tag string, value any) *ErrInvalidField {
	return &ErrInvalidField{
		error: fmt.Errorf("field %s: value %v does not satisfy %q", field, value, tag),
		Field: field,
		Tag:   tag,
	}
}
