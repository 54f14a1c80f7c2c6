package kbart

import "fmt"

type KBARTError struct {
	Message string
}

func (errorValue KBARTError) Error() string {
	return errorValue.Message
}

// InvalidRPError reports a Recommended Practice version other than 1 or 2.
type InvalidRPError struct {
	KBARTError
	RP int
}

func NewInvalidRPError(rp int) error {
	return InvalidRPError{
		KBARTError: KBARTError{Message: fmt.Sprintf("invalid recommended practice version %d: must be 1 or 2", rp)},
		RP:         rp,
	}
}

// ProviderNotFoundError reports a provider name with no field extension
// table. See KnownProviders for the supported names.
type ProviderNotFoundError struct {
	KBARTError
	Provider string
}

func NewProviderNotFoundError(provider string) error {
	return ProviderNotFoundError{
		KBARTError: KBARTError{Message: fmt.Sprintf("provider %q is not a known provider", provider)},
		Provider:   provider,
	}
}

// FieldNotFoundError reports a name that is not part of a record's field
// sequence. It is returned by the strict accessors; GetFields skips unknown
// names instead.
type FieldNotFoundError struct {
	KBARTError
	Field string
}

func NewFieldNotFoundError(field string) error {
	return FieldNotFoundError{
		KBARTError: KBARTError{Message: fmt.Sprintf("%q is not a field of this record", field)},
		Field:      field,
	}
}

// UnknownEmbargoFormatError reports an embargo value that does not match
// the <type><length><unit> code pattern.
type UnknownEmbargoFormatError struct {
	KBARTError
	Embargo string
}

func NewUnknownEmbargoFormatError(embargo string) error {
	return UnknownEmbargoFormatError{
		KBARTError: KBARTError{Message: fmt.Sprintf("embargo %q does not match the expected format", embargo)},
		Embargo:    embargo,
	}
}

// IncompleteDateInformationError reports holdings with no parseable start
// date, from which no coverage length can be computed.
type IncompleteDateInformationError struct {
	KBARTError
}

func NewIncompleteDateInformationError() error {
	return IncompleteDateInformationError{
		KBARTError: KBARTError{Message: "no usable start date to compute coverage length"},
	}
}
