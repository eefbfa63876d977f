// internal/core/domain/address.go
package domain

import (
	"fmt"
	"strconv"
	"strings"

	"netsweep/internal/platform/validator"
)

// HostsPerBlock is the number of addresses in a /24 block, network and broadcast included.
const HostsPerBlock = 256

// Address is a dotted IPv4 host address inside a /24 block.
type Address string

// String implements fmt.Stringer.
func (a Address) String() string { return string(a) }

// LastOctet returns the host part of the address, or -1 if the address is malformed.
func (a Address) LastOctet() int {
	idx := strings.LastIndexByte(string(a), '.')
	if idx < 0 {
		return -1
	}
	n, err := strconv.Atoi(string(a)[idx+1:])
	if err != nil || n < 0 || n > 255 {
		return -1
	}
	return n
}

// Prefix is a validated three-octet network prefix, e.g. "192.168.1".
type Prefix string

// ParsePrefix validates and normalizes a /24 prefix. Besides the plain
// three-octet form it accepts "a.b.c.", "a.b.c.x", a host address and a
// "/24" CIDR, all of which normalize to "a.b.c".
func ParsePrefix(s string) (Prefix, error) {
	normalized := validator.NormalizePrefix24(s)
	if normalized == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrefix, s)
	}
	return Prefix(normalized), nil
}

// String implements fmt.Stringer.
func (p Prefix) String() string { return string(p) }

// CIDR returns the block in CIDR notation.
func (p Prefix) CIDR() string { return string(p) + ".0/24" }

// Enumerate returns the 256 addresses of the block. See Enumerate.
func (p Prefix) Enumerate() []Address {
	return Enumerate(string(p))
}

// Enumerate expands prefix into prefix+".0" .. prefix+".255" in ascending
// order. It does not validate prefix.
func Enumerate(prefix string) []Address {
	addrs := make([]Address, HostsPerBlock)
	for i := 0; i < HostsPerBlock; i++ {
		addrs[i] = Address(prefix + "." + strconv.Itoa(i))
	}
	return addrs
}
