// internal/platform/validator/validator_test.go
package validator

import (
	"testing"

	"netsweep/internal/testutil"
)

func TestIsIPv4(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid", "10.0.0.254", true},
		{"ipv6", "2001:db8::1", false},
		{"ipv4-mapped ipv6", "::ffff:10.0.0.1", false},
		{"octet overflow", "10.0.0.256", false},
		{"garbage", "router", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsIPv4(tt.input), tt.expected, "ipv4 validation")
		})
	}
}

func TestIsOctet(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"0", true},
		{"7", true},
		{"255", true},
		{"256", false},
		{"01", false},
		{"-1", false},
		{"+1", false},
		{"", false},
		{"1a", false},
		{"1000", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, IsOctet(tt.input), tt.expected, "octet validation")
		})
	}
}

func TestIsPrefix24(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"192.168.1", true},
		{"10.0.0", true},
		{"0.0.0", true},
		{"192.168", false},
		{"192.168.1.1", false},
		{"192.168.256", false},
		{"192..1", false},
		{"a.b.c", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, IsPrefix24(tt.input), tt.expected, "prefix validation")
		})
	}
}

func TestNormalizePrefix24(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"192.168.1", "192.168.1"},
		{" 192.168.1 ", "192.168.1"},
		{"192.168.1.", "192.168.1"},
		{"192.168.1.0", "192.168.1"},
		{"192.168.1.77", "192.168.1"},
		{"192.168.1.x", "192.168.1"},
		{"192.168.1.*", "192.168.1"},
		{"192.168.1.0/24", "192.168.1"},
		{"192.168.1.0/16", ""},
		{"192.168.1/24", ""},
		{"192.168.1.999", ""},
		{"192.168", ""},
		{"host.local", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, NormalizePrefix24(tt.input), tt.expected, "prefix normalization")
		})
	}
}

func TestOneOf(t *testing.T) {
	testutil.AssertTrue(t, OneOf("Parallel", "auto", "parallel", "sequential"), "case insensitive")
	testutil.AssertFalse(t, OneOf("threads", "auto", "parallel"), "unknown value")
}
