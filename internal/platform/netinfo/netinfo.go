// internal/platform/netinfo/netinfo.go
package netinfo

import (
	"fmt"
	"net"

	"netsweep/internal/platform/errors"
)

// Interface es la vista mínima de una interfaz que usa este paquete.
type Interface struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// listInterfaces se reemplaza en tests.
var listInterfaces = func() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		out = append(out, Interface{Name: iface.Name, Flags: iface.Flags, Addrs: addrs})
	}
	return out, nil
}

// LocalPrefixes devuelve los prefijos de tres octetos de cada /24 privado
// asignado a una interfaz activa, sin duplicados y en orden de interfaz.
func LocalPrefixes() ([]string, error) {
	ifaces, err := listInterfaces()
	if err != nil {
		return nil, errors.Wrap(err, "list interfaces")
	}
	return prefixesFrom(ifaces), nil
}

// DetectPrefix devuelve el primer /24 privado local.
func DetectPrefix() (string, error) {
	prefixes, err := LocalPrefixes()
	if err != nil {
		return "", err
	}
	if len(prefixes) == 0 {
		return "", errors.Wrap(errors.ErrNotFound, "no private IPv4 network on an active interface")
	}
	return prefixes[0], nil
}

func prefixesFrom(ifaces []Interface) []string {
	var prefixes []string
	seen := make(map[string]struct{})

	for _, iface := range ifaces {
		// Skip loopback and down interfaces
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		for _, addr := range iface.Addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			// Only process private IPv4 addresses
			ip := ipNet.IP.To4()
			if ip == nil || !ip.IsPrivate() {
				continue
			}

			key := fmt.Sprintf("%d.%d.%d", ip[0], ip[1], ip[2])
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}

			prefixes = append(prefixes, key)
		}
	}

	return prefixes
}
