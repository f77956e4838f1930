package dexscreener

import (
	"errors"
	"fmt"
)

// Kind classifies why a pair lookup failed.
type Kind string

const (
	KindTransport  Kind = "transport"
	KindHTTPStatus Kind = "http_status"
	KindNoData     Kind = "no_data"
	KindParse      Kind = "parse"
)

// Sentinels matched by errors.Is against a *FetchError of the same kind.
var (
	ErrTransport  = errors.New("dexscreener request failed")
	ErrHTTPStatus = errors.New("dexscreener returned an error status")
	ErrNoData     = errors.New("dexscreener has no pairs for token")
	ErrParse      = errors.New("dexscreener response is malformed")
)

// FetchError is returned by FetchPair for every failed lookup.
type FetchError struct {
	Kind       Kind
	Address    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("fetch pair %s: http status %d", e.Address, e.StatusCode)
	case KindNoData:
		return fmt.Sprintf("fetch pair %s: no pairs found", e.Address)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch pair %s: %s: %v", e.Address, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch pair %s: %s", e.Address, e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindHTTPStatus:
		return ErrHTTPStatus
	case KindNoData:
		return ErrNoData
	case KindParse:
		return ErrParse
	default:
		return nil
	}
}

// KindOf extracts the failure kind from err, if it wraps a *FetchError.
func KindOf(err error) (Kind, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind, true
	}
	return "", false
}
