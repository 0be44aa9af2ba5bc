package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	price, err := NewMoneyFromString("250.555")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if price.String() != "250.56" {
		t.Fatalf("expected rounding to 2 places, got %s", price.String())
	}
	if price.MulInt(3).String() != "751.68" {
		t.Fatalf("unexpected line total: %s", price.MulInt(3).String())
	}

	fee, _ := NewMoneyFromString("150")
	if price.Add(fee).String() != "400.56" {
		t.Fatalf("unexpected sum: %s", price.Add(fee).String())
	}
}

func TestMoneyJSON(t *testing.T) {
	price, _ := NewMoneyFromString("99.9")
	raw, err := json.Marshal(price)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != `"99.90"` {
		t.Fatalf("money must marshal as a fixed string, got %s", raw)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"12.50"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "12.50" {
		t.Fatalf("unexpected value: %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`12.5`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "12.50" {
		t.Fatalf("unexpected value: %s", fromNumber.String())
	}
}
