package eventmodels

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOptionType     = errors.New("option type must be 'C' for call or 'P' for put")
	ErrMalformedOptionSymbol = errors.New("malformed option symbol")
)

// DataFetchError wraps an upstream feed failure for one symbol. The caller
// logs it and skips the symbol for the cycle; the bar store stays untouched.
type DataFetchError struct {
	Symbol OptionSymbol
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("data fetch failed for %s: %v", e.Symbol, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}
