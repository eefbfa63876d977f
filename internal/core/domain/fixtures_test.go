// internal/core/domain/fixtures_test.go
package domain

import (
	"errors"
	"time"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

func alive(addr string, rtt time.Duration) ProbeOutcome {
	return ProbeOutcome{Address: Address(addr), Reachable: true, RTT: rtt, Timestamp: fixedTime}
}

func silent(addr string) ProbeOutcome {
	return ProbeOutcome{Address: Address(addr), Timestamp: fixedTime}
}

func failed(addr string) ProbeOutcome {
	o := silent(addr)
	o.Err = errors.New("sendto: network is unreachable")
	return o
}
