package caja

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a, b := ARS(100.10), ARS(0.20)
	if got := a.Add(b); !got.Equal(ARS(100.30)) {
		t.Errorf("Add = %s, want %s", got, ARS(100.30))
	}
	if got := a.Sub(b); !got.Equal(ARS(99.90)) {
		t.Errorf("Sub = %s, want %s", got, ARS(99.90))
	}
	if got := b.Neg(); !got.Equal(ARS(-0.20)) {
		t.Errorf("Neg = %s, want %s", got, ARS(-0.20))
	}
	if !ARS(0).IsZero() || ARS(1).IsZero() {
		t.Error("IsZero misbehaves")
	}
	if !ARS(1).IsPositive() || !ARS(-1).IsNegative() {
		t.Error("sign predicates misbehave")
	}
}

func TestMoneyExactAddition(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 with decimal amounts; with binary
	// floats it is not.
	if got := ARS(0.1).Add(ARS(0.2)); !got.Equal(ARS(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want %s", got, ARS(0.3))
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("1234.56")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if !m.Equal(ARS(1234.56)) {
		t.Errorf("ParseMoney = %s, want %s", m, ARS(1234.56))
	}
	if _, err := ParseMoney("diez"); err == nil {
		t.Error("ParseMoney accepted a non-numeric string")
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(ARS(42.5))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "42.5" {
		t.Errorf("Marshal = %s, want a plain number 42.5", data)
	}
	var m Money
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !m.Equal(ARS(42.5)) {
		t.Errorf("round trip = %s, want %s", m, ARS(42.5))
	}
}
