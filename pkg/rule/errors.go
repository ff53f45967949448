package rule

import "errors"

// Sentinel construction errors. Returned errors wrap one of these together
// with the underlying ident validation failure, so callers can use errors.Is
// for coarse matching or errors.As for the offending input.
var (
	ErrInvalidKey  = errors.New("invalid key")
	ErrInvalidType = errors.New("invalid type value")
	ErrEmptyValue  = errors.New("empty value")
)
