package analysis

import (
	"context"
	"errors"
	"fmt"

	"tokenScope/internal/address"
	"tokenScope/internal/dexscreener"
)

// Level is the severity of a user-facing message.
type Level string

const (
	LevelNone    Level = ""
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// UserMessage turns an analysis error into text suitable for the user.
// Every failure kind maps to a distinct message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var fetchErr *dexscreener.FetchError
	isFetchErr := errors.As(err, &fetchErr)
	switch {
	case errors.Is(err, address.ErrEmpty):
		return "Please enter a contract address."
	case errors.Is(err, address.ErrInvalid):
		return "Contract addresses cannot contain spaces or URL characters."
	case errors.Is(err, context.Canceled):
		return "Analysis cancelled."
	case errors.Is(err, dexscreener.ErrNoData):
		return "No token data found for the provided contract address."
	case isFetchErr && fetchErr.Kind == dexscreener.KindHTTPStatus:
		return fmt.Sprintf("DexScreener responded with HTTP %d. Try again later.", fetchErr.StatusCode)
	case errors.Is(err, dexscreener.ErrParse):
		return "Error parsing data returned by DexScreener."
	case errors.Is(err, context.DeadlineExceeded):
		return "Timed out waiting for DexScreener."
	case isFetchErr && fetchErr.Kind == dexscreener.KindTransport && fetchErr.Err != nil:
		return fmt.Sprintf("Failed to fetch data: %v", fetchErr.Err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}

// LevelOf classifies err. Input problems and missing data are warnings.
func LevelOf(err error) Level {
	switch {
	case err == nil:
		return LevelNone
	case errors.Is(err, address.ErrEmpty),
		errors.Is(err, address.ErrInvalid),
		errors.Is(err, dexscreener.ErrNoData),
		errors.Is(err, context.Canceled):
		return LevelWarning
	default:
		return LevelError
	}
}
