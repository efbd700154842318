package semacode

import "errors"

var (
	// ErrInvalidInput is returned when the message to encode is empty.
	ErrInvalidInput = errors.New("semacode: message must not be empty")

	// ErrMessageTooLong is returned when the message needs more data
	// codewords than the largest Data Matrix symbol can hold.
	ErrMessageTooLong = errors.New("semacode: message too long for any symbol size")
)
