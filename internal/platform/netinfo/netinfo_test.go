package netinfo

import (
	"net"
	"testing"

	"netsweep/internal/platform/errors"
	"netsweep/internal/testutil"
)

func ipNet(t *testing.T, cidr string) *net.IPNet {
	t.Helper()
	ip, n, err := net.ParseCIDR(cidr)
	if err != nil {
		t.Fatalf("parse %s: %v", cidr, err)
	}
	n.IP = ip
	return n
}

func withInterfaces(t *testing.T, ifaces []Interface, err error) {
	t.Helper()
	orig := listInterfaces
	listInterfaces = func() ([]Interface, error) { return ifaces, err }
	t.Cleanup(func() { listInterfaces = orig })
}

func TestPrefixesFrom(t *testing.T) {
	up := net.FlagUp

	ifaces := []Interface{
		{Name: "lo", Flags: up | net.FlagLoopback, Addrs: []net.Addr{ipNet(t, "127.0.0.1/8")}},
		{Name: "eth0", Flags: up, Addrs: []net.Addr{
			ipNet(t, "192.168.1.23/24"),
			ipNet(t, "fe80::1/64"),
			ipNet(t, "192.168.1.99/24"),
		}},
		{Name: "eth1", Flags: 0, Addrs: []net.Addr{ipNet(t, "10.0.0.5/8")}},
		{Name: "wan", Flags: up, Addrs: []net.Addr{ipNet(t, "8.8.4.4/24")}},
		{Name: "wg0", Flags: up, Addrs: []net.Addr{
			&net.IPAddr{IP: net.ParseIP("10.1.1.1")},
			ipNet(t, "172.16.40.2/16"),
		}},
	}

	got := prefixesFrom(ifaces)
	testutil.AssertLen(t, got, 2, "prefixes")
	testutil.AssertEqual(t, got[0], "192.168.1", "first interface first, deduplicated")
	testutil.AssertEqual(t, got[1], "172.16.40", "wider masks reduced to the /24 of the address")
}

func TestDetectPrefix(t *testing.T) {
	withInterfaces(t, []Interface{
		{Name: "eth0", Flags: net.FlagUp, Addrs: []net.Addr{ipNet(t, "10.20.30.40/24")}},
	}, nil)

	prefix, err := DetectPrefix()
	testutil.AssertNoError(t, err, "DetectPrefix")
	testutil.AssertEqual(t, prefix, "10.20.30", "detected prefix")
}

func TestDetectPrefix_None(t *testing.T) {
	withInterfaces(t, []Interface{
		{Name: "lo", Flags: net.FlagUp | net.FlagLoopback, Addrs: []net.Addr{ipNet(t, "127.0.0.1/8")}},
	}, nil)

	_, err := DetectPrefix()
	testutil.AssertTrue(t, errors.IsNotFound(err), "no private network is ErrNotFound")
}

func TestDetectPrefix_ListError(t *testing.T) {
	withInterfaces(t, nil, errors.ErrPermissionDenied)

	_, err := LocalPrefixes()
	testutil.AssertErrorIs(t, err, errors.ErrPermissionDenied, "list error propagated")
}
