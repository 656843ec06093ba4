package utils

import "errors"

var (
	// ErrShapeMismatch is returned when matrix or vector dimensions are inconsistent
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidLabel is returned when a label is not an integer in [0, nclasses-1]
	ErrInvalidLabel = errors.New("invalid label")
	// ErrNumericDegeneracy is returned when NaN or Inf reaches an activation
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)
