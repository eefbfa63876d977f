// internal/core/domain/address_test.go
package domain

import (
	"strconv"
	"testing"

	"netsweep/internal/testutil"
)

func TestEnumerate(t *testing.T) {
	addrs := Enumerate("10.0.0")

	testutil.AssertLen(t, addrs, HostsPerBlock, "block size")
	seen := make(map[Address]bool, len(addrs))
	for i, a := range addrs {
		want := Address("10.0.0." + strconv.Itoa(i))
		testutil.AssertEqual(t, a, want, "address at index "+strconv.Itoa(i))
		testutil.AssertFalse(t, seen[a], "duplicate address "+a.String())
		seen[a] = true
	}
	testutil.AssertEqual(t, addrs[0], Address("10.0.0.0"), "first address")
	testutil.AssertEqual(t, addrs[255], Address("10.0.0.255"), "last address")
}

func TestEnumerate_Deterministic(t *testing.T) {
	a := Enumerate("192.168.1")
	b := Enumerate("192.168.1")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestEnumerate_NoValidation(t *testing.T) {
	addrs := Enumerate("not-a-prefix")
	testutil.AssertLen(t, addrs, HostsPerBlock, "malformed prefixes still expand")
	testutil.AssertEqual(t, addrs[7], Address("not-a-prefix.7"), "raw concatenation")
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		input   string
		want    Prefix
		wantErr bool
	}{
		{"192.168.1", "192.168.1", false},
		{"10.0.0.", "10.0.0", false},
		{"10.0.0.0/24", "10.0.0", false},
		{"  172.16.5  ", "172.16.5", false},
		{"", "", true},
		{"192.168", "", true},
		{"256.1.1", "", true},
		{"a.b.c", "", true},
		{"10.0.0.0/16", "", true},
		{"+1.2.3", "", true},
		{"1..3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrefix(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, ErrInvalidPrefix, "invalid prefix")
				return
			}
			testutil.AssertNoError(t, err, "valid prefix")
			testutil.AssertEqual(t, got, tt.want, "normalized prefix")
		})
	}
}

func TestPrefix_Methods(t *testing.T) {
	p := Prefix("10.1.2")

	testutil.AssertEqual(t, p.CIDR(), "10.1.2.0/24", "CIDR form")
	testutil.AssertEqual(t, p.String(), "10.1.2", "String form")
	testutil.AssertLen(t, p.Enumerate(), HostsPerBlock, "Prefix.Enumerate")
}

func TestAddress_LastOctet(t *testing.T) {
	testutil.AssertEqual(t, Address("10.0.0.254").LastOctet(), 254, "valid address")
	testutil.AssertEqual(t, Address("10.0.0.0").LastOctet(), 0, "network address")
	testutil.AssertEqual(t, Address("garbage").LastOctet(), -1, "no dot")
	testutil.AssertEqual(t, Address("10.0.0.300").LastOctet(), -1, "out of range")
}
