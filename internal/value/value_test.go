package value_test

import (
	"math/big"
	"testing"

	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

func TestAddSub(t *testing.T) {
	a := value.NewFromAssets(map[string]*big.Int{
		"lovelace": big.NewInt(10_000_000),
		"policy1deadbeef": big.NewInt(5),
	})
	b := value.NewFromAssets(map[string]*big.Int{
		"lovelace": big.NewInt(4_000_000),
	})

	sum := a.Add(b)
	if sum.Get("lovelace").Cmp(big.NewInt(14_000_000)) != 0 {
		t.Errorf("expected 14000000 lovelace, got %s", sum.Get("lovelace"))
	}
	if sum.Get("policy1deadbeef").Cmp(big.NewInt(5)) != 0 {
		t.Errorf("expected asset quantity unaffected by Add, got %s", sum.Get("policy1deadbeef"))
	}

	diff := sum.Sub(b)
	if diff.Get("lovelace").Cmp(big.NewInt(10_000_000)) != 0 {
		t.Errorf("expected 10000000 lovelace after Sub, got %s", diff.Get("lovelace"))
	}
}

// S7: for any asset bundle A, sum(A) - sum(A) yields empty.
func TestRoundTrip(t *testing.T) {
	a := value.NewFromAssets(map[string]*big.Int{
		"lovelace":        big.NewInt(7_123_456),
		"policy1deadbeef": big.NewInt(42),
		"policy2cafe":     big.NewInt(1),
	})
	result := a.Add(a).Sub(a).Sub(a)
	if !result.IsEmpty() {
		t.Errorf("expected empty value after sum(A) - sum(A), got %+v", result.Amounts)
	}
}

func TestGreaterOrEqual(t *testing.T) {
	v := value.NewFromAssets(map[string]*big.Int{
		"lovelace": big.NewInt(10_000_000),
		"tokenA":   big.NewInt(3),
	})
	need := value.NewFromAssets(map[string]*big.Int{
		"lovelace": big.NewInt(5_000_000),
		"tokenA":   big.NewInt(3),
	})
	if !v.GreaterOrEqual(need) {
		t.Errorf("expected v to cover need")
	}

	tooMuch := value.NewFromAssets(map[string]*big.Int{
		"tokenA": big.NewInt(4),
	})
	if v.GreaterOrEqual(tooMuch) {
		t.Errorf("expected v to NOT cover a requirement exceeding its tokenA balance")
	}

	// Extra assets in v beyond what's required are always allowed.
	extra := value.NewFromAssets(map[string]*big.Int{
		"lovelace": big.NewInt(1_000_000),
	})
	if !v.GreaterOrEqual(extra) {
		t.Errorf("expected v with surplus lovelace to cover a smaller requirement")
	}
}

func TestIsEmpty(t *testing.T) {
	v := value.New()
	if !v.IsEmpty() {
		t.Errorf("expected New() to be empty")
	}
	v = v.Add(value.NewLovelace(0))
	if !v.IsEmpty() {
		t.Errorf("expected zero-quantity lovelace to still be empty")
	}
	v = v.Add(value.NewLovelace(1))
	if v.IsEmpty() {
		t.Errorf("expected non-zero lovelace to not be empty")
	}
}

func TestMinUTxOLovelace(t *testing.T) {
	simple := value.NewLovelace(2_000_000)
	withAsset := simple.Add(value.NewFromAssets(map[string]*big.Int{
		"11111111111111111111111111111111111111111111111111111164656164": big.NewInt(1),
	}))

	base := value.MinUTxOLovelace(simple, 4310, 160)
	withToken := value.MinUTxOLovelace(withAsset, 4310, 160)
	if withToken <= base {
		t.Errorf(
			"expected output carrying a native asset to need more min-UTxO lovelace: base=%d withToken=%d",
			base,
			withToken,
		)
	}
}
