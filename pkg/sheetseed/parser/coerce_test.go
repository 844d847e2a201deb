package parser

import (
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected *float64
	}{
		{"123", fp(123)},
		{"123.45", fp(123.45)},
		{"-100", fp(-100)},
		{"  42.5  ", fp(42.5)},
		{"$11,500.00", fp(11500)},
		{"", nil},
		{"   ", nil},
		{"hello", nil},
		{"12x", nil},
	}

	for _, tt := range tests {
		got := Number(tt.input)
		if !floatPtrEq(got, tt.expected) {
			t.Errorf("Number(%q) = %v, expected %v", tt.input, deref(got), deref(tt.expected))
		}
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		input    string
		expected *int
	}{
		{"42", ip(42)},
		{"42.9", ip(42)}, // float-then-truncate
		{"-3.7", ip(-3)},
		{"1,250", ip(1250)},
		{"", nil},
		{"abc", nil},
	}

	for _, tt := range tests {
		got := Integer(tt.input)
		switch {
		case got == nil && tt.expected == nil:
		case got == nil || tt.expected == nil || *got != *tt.expected:
			t.Errorf("Integer(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		input    string
		expected *string
	}{
		{"  Bob  ", sp("Bob")},
		{"Jane Doe", sp("Jane Doe")},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		got := Text(tt.input)
		switch {
		case got == nil && tt.expected == nil:
		case got == nil || tt.expected == nil || *got != *tt.expected:
			t.Errorf("Text(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func sp(v string) *string   { return &v }

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
