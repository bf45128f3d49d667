package dashboard

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.50, "USD")
	b := M(49.50, "USD")

	if got, want := a.Add(b).String(), M(150, "USD").String(); got != want {
		t.Errorf("Add = %s, want %s", got, want)
	}
	if got, want := a.Sub(b).String(), M(51, "USD").String(); got != want {
		t.Errorf("Sub = %s, want %s", got, want)
	}
	if !a.GreaterThan(b) {
		t.Error("100.50 not greater than 49.50")
	}
}

func TestMoneyZeroValueIsCurrencyless(t *testing.T) {
	// the zero Money merges with any currency, so sums can start from zero
	var total Money
	total = total.Add(M(10, "EUR"))
	if got := total.Currency(); got != "EUR" {
		t.Errorf("currency after merge = %q, want EUR", got)
	}
}

func TestMoneyMismatchedCurrenciesPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestMoneyDiv(t *testing.T) {
	r := M(200, "USD").Div(M(1000, "USD"))
	if !r.Defined || r.Value != 0.2 {
		t.Errorf("Div = %v, want 0.2", r)
	}
	if M(200, "USD").Div(M(0, "USD")).Defined {
		t.Error("division by zero produced a defined ratio")
	}
}

func TestMoneyJSON(t *testing.T) {
	in := M(1234.56, "USD")
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out Money
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal %s: %v", raw, err)
	}
	if !out.Equal(in) {
		t.Errorf("roundtrip = %s, want %s", out, in)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(-50, "USD").SignedString(); got[0] != '-' {
		t.Errorf("SignedString(-50) = %q, want a leading sign", got)
	}
	if got := M(50, "USD").SignedString(); got[0] != '+' {
		t.Errorf("SignedString(50) = %q, want a leading sign", got)
	}
}
