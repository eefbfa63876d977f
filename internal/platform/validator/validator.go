// internal/platform/validator/validator.go
package validator

import (
	"net"
	"strconv"
	"strings"
)

// Network validators

// IsIPv4 verifica si un string es una dirección IPv4 válida.
func IsIPv4(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return parsed.To4() != nil && !strings.Contains(ip, ":")
}

// IsOctet valida un octeto decimal [0-255] sin signo, sin espacios y sin ceros a la izquierda.
func IsOctet(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// IsPrefix24 verifica que s tenga exactamente tres octetos, e.g. "192.168.1".
func IsPrefix24(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if !IsOctet(p) {
			return false
		}
	}
	return true
}

// NormalizePrefix24 acepta "a.b.c", "a.b.c.", "a.b.c.x", una dirección "a.b.c.d" o un CIDR
// "a.b.c.d/24" y devuelve "a.b.c". Devuelve "" si la entrada no describe un bloque /24.
func NormalizePrefix24(s string) string {
	s = strings.TrimSpace(s)

	if base, bits, ok := strings.Cut(s, "/"); ok {
		if bits != "24" {
			return ""
		}
		s = base
		if strings.Count(s, ".") != 3 {
			return ""
		}
	}

	if strings.Count(s, ".") == 3 {
		idx := strings.LastIndex(s, ".")
		last := s[idx+1:]
		if last != "" && last != "x" && last != "*" && !IsOctet(last) {
			return ""
		}
		s = s[:idx]
	}

	if !IsPrefix24(s) {
		return ""
	}
	return s
}

// Generic validators

// OneOf verifica si value (sin distinguir mayúsculas) está en allowed.
func OneOf(value string, allowed ...string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
