package address

import (
	"errors"
	"testing"
)

const (
	bonkMint = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	usdtBSC  = "0x55d398326f99059fF775485246999027B3197955"
)

func TestParseSolana(t *testing.T) {
	got, err := Parse("  " + bonkMint + "\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != bonkMint || got.Kind != KindSolana {
		t.Fatalf("unexpected address: %+v", got)
	}
}

func TestParseEVM(t *testing.T) {
	got, err := Parse(usdtBSC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != usdtBSC || got.Kind != KindEVM {
		t.Fatalf("unexpected address: %+v", got)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := Parse(input); !errors.Is(err, ErrEmpty) {
			t.Fatalf("Parse(%q) error = %v, want ErrEmpty", input, err)
		}
	}
}

func TestParseOtherChains(t *testing.T) {
	inputs := []string{
		"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t",               // Tron USDT
		"0x2::sui::SUI",                                    // Sui coin type
		"EQCxE6mUtQJKFnGfaROTKOt1lZbDiiX1kCixRv7Nw2Id_sDs", // TON USDT
		"0x1234",
		"3vZ67CGoRYkuT76T",
		"not-an-address",
	}
	for _, input := range inputs {
		got, err := Parse(" " + input + " ")
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", input, err)
		}
		if got.Value != input || got.Kind != KindOther {
			t.Fatalf("Parse(%q) = %+v, want KindOther", input, got)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"Dez XAZ8z7",
		"abc\tdef",
		"So111/evil",
		"token?x=1",
		"abc#frag",
		"100%25",
		"back\\slash",
		"nul\x00byte",
	}
	for _, input := range inputs {
		if _, err := Parse(input); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalid", input, err)
		}
	}
}
