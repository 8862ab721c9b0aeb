package plot

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the rendering pipeline. Match with errors.Is:
//
//	if errors.Is(err, plot.ErrConfiguration) { ... }
//
// The first failure short-circuits the current element and propagates to
// the caller unchanged; the pipeline never recovers locally and never
// retries.
var (
	// ErrConfiguration reports a missing or invalid property value, or
	// an unrecognized property in a strict walk.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation reports mismatched data-series lengths or an
	// unsupported enum value.
	ErrValidation = errors.New("validation error")
	// ErrDomain reports a scale translation on a value outside the
	// scale's domain vocabulary.
	ErrDomain = errors.New("domain error")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func domainErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}
