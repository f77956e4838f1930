package address

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// Kind identifies the address family of a token contract.
type Kind string

const (
	KindSolana Kind = "solana"
	KindEVM    Kind = "evm"
	// KindOther covers every other chain DexScreener indexes (Tron, Sui, TON, ...).
	KindOther Kind = "other"
)

const solanaKeyLen = 32

var (
	// ErrEmpty is returned when the input is blank after trimming.
	ErrEmpty = errors.New("contract address is empty")
	// ErrInvalid is returned when the input cannot be a token address on any chain.
	ErrInvalid = errors.New("contract address is invalid")
)

// Address is a validated token contract address.
type Address struct {
	Value string `json:"value"`
	Kind  Kind   `json:"kind"`
}

func (a Address) String() string {
	return a.Value
}

// Parse trims raw and classifies it as a Solana mint, an EVM contract or
// another chain's address. Only input that cannot form a single URL path
// segment is rejected.
func Parse(raw string) (Address, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Address{}, ErrEmpty
	}
	if strings.ContainsFunc(input, invalidRune) {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalid, input)
	}

	return Address{Value: input, Kind: classify(input)}, nil
}

func classify(input string) Kind {
	if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
		if common.IsHexAddress(input) {
			return KindEVM
		}
		return KindOther
	}

	decoded, err := base58.Decode(input)
	if err == nil && len(decoded) == solanaKeyLen {
		return KindSolana
	}
	return KindOther
}

func invalidRune(r rune) bool {
	switch r {
	case '/', '\\', '?', '#', '%':
		return true
	}
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
