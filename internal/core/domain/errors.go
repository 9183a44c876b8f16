package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIndex     = errors.New("cart index out of range")
	ErrInvalidQuantity  = errors.New("quantity is not a number")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// PriceParseError reports a price that is not "<ISO code> <amount>".
type PriceParseError struct {
	Input string
	Err   error
}

func (e *PriceParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid price %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid price %q", e.Input)
}

func (e *PriceParseError) Unwrap() error {
	return e.Err
}

// PriceError names the cart line whose price could not be used.
type PriceError struct {
	Item string
	Err  error
}

func (e *PriceError) Error() string {
	return fmt.Sprintf("price of %q: %v", e.Item, e.Err)
}

func (e *PriceError) Unwrap() error {
	return e.Err
}

// PersistenceDecodeError is a stored value that cannot be decoded. Stores
// treat it as an absent value.
type PersistenceDecodeError struct {
	Key string
	Err error
}

func (e *PersistenceDecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e *PersistenceDecodeError) Unwrap() error {
	return e.Err
}
