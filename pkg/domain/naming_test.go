package domain_test

import (
	"testing"

	"github.com/aretw0/nfa/pkg/domain"
)

func TestPickAvailablePrefix(t *testing.T) {
	tests := []struct {
		name string
		used []string
		want string
	}{
		{"empty", nil, "S"},
		{"S and Q taken", []string{"S0", "S3", "Q1"}, "P"},
		{"lowercase does not clash", []string{"s0", "q1"}, "S"},
		{"all taken", []string{"S0", "Q0", "P0", "A0", "B0", "C0"}, "X"},
		{"empty id ignored", []string{""}, "S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.PickAvailablePrefix(tt.used); got != tt.want {
				t.Errorf("PickAvailablePrefix(%v) = %q, want %q", tt.used, got, tt.want)
			}
		})
	}
}

func TestFreshState(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		prefix string
		want   string
	}{
		{"max suffix plus one", []string{"S0", "S3"}, "S", "S4"},
		{"no match", []string{"Q1", "Q2"}, "P", "P0"},
		{"empty set", nil, "S", "S0"},
		{"malformed ids ignored", []string{"Sx", "S", "S-1", "S2a", "S1"}, "S", "S2"},
		{"leading zeros", []string{"S007"}, "S", "S8"},
		{"carry", []string{"S9", "S99"}, "S", "S100"},
		{"huge suffix", []string{"S99999999999999999999999"}, "S", "S100000000000000000000000"},
		{"multi char prefix avoids exact id", []string{"SS0"}, "SS", "SS1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FreshState(tt.states, tt.prefix)
			if got != tt.want {
				t.Errorf("FreshState(%v, %q) = %q, want %q", tt.states, tt.prefix, got, tt.want)
			}
			for _, s := range tt.states {
				if s == got {
					t.Errorf("FreshState(%v, %q) collides with %q", tt.states, tt.prefix, s)
				}
			}
		})
	}
}
