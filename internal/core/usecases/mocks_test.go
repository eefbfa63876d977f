// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
)

// simulatedNetwork es un ports.Prober que responde según un conjunto fijo
// de hosts vivos. Registra sondas en vuelo y llamadas por dirección.
type simulatedNetwork struct {
	responders map[domain.Address]bool
	hung       map[domain.Address]bool
	failing    map[domain.Address]bool
	delay      time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32

	mu    sync.Mutex
	calls map[domain.Address]int
}

var errSendFailed = errors.New("sendto: no route to host")

func newSimulatedNetwork(prefix string, hosts ...int) *simulatedNetwork {
	n := &simulatedNetwork{
		responders: make(map[domain.Address]bool),
		hung:       make(map[domain.Address]bool),
		failing:    make(map[domain.Address]bool),
		calls:      make(map[domain.Address]int),
	}
	for _, h := range hosts {
		n.responders[hostAddr(prefix, h)] = true
	}
	return n
}

func hostAddr(prefix string, host int) domain.Address {
	return domain.Address(prefix + "." + strconv.Itoa(host))
}

func (n *simulatedNetwork) Name() string { return "simulated" }

func (n *simulatedNetwork) Probe(ctx context.Context, addr domain.Address, timeout time.Duration) (ports.ProbeReply, error) {
	cur := n.inFlight.Add(1)
	defer n.inFlight.Add(-1)
	for {
		peak := n.maxInFlight.Load()
		if cur <= peak || n.maxInFlight.CompareAndSwap(peak, cur) {
			break
		}
	}

	n.mu.Lock()
	n.calls[addr]++
	n.mu.Unlock()

	if n.hung[addr] {
		// ignora su propio timeout; solo el contexto lo libera
		<-ctx.Done()
		return ports.ProbeReply{}, ctx.Err()
	}
	if n.failing[addr] {
		return ports.ProbeReply{}, errSendFailed
	}

	if n.delay > 0 {
		wait := n.delay
		if wait > timeout {
			wait = timeout
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ports.ProbeReply{}, nil
		}
		if n.delay > timeout {
			return ports.ProbeReply{}, nil
		}
	}

	if n.responders[addr] {
		return ports.ProbeReply{Reachable: true, RTT: n.delay + time.Microsecond}, nil
	}
	return ports.ProbeReply{}, nil
}

func (n *simulatedNetwork) Close() error { return nil }

func (n *simulatedNetwork) callCount(addr domain.Address) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[addr]
}

func (n *simulatedNetwork) totalCalls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	total := 0
	for _, c := range n.calls {
		total += c
	}
	return total
}

// mockNotifier es un mock de ports.Notifier para tests
type mockNotifier struct {
	mu              sync.Mutex
	notifyFunc      func(ctx context.Context, event ports.Event) error
	closeFunc       func() error
	notifyCallCount int
	events          []ports.Event
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		notifyCallCount: 0,
		events:          []ports.Event{},
	}
}

func (m *mockNotifier) Notify(ctx context.Context, event ports.Event) error {
	m.mu.Lock()
	m.notifyCallCount++
	m.events = append(m.events, event)
	m.mu.Unlock()

	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, event)
	}
	return nil
}

func (m *mockNotifier) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

// getEventsByType returns events filtered by type
func (m *mockNotifier) getEventsByType(eventType ports.EventType) []ports.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var filtered []ports.Event
	for _, e := range m.events {
		if e.Type == eventType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// getNotifyCallCount returns the number of times Notify was called (thread-safe)
func (m *mockNotifier) getNotifyCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifyCallCount
}

func addressStrings(addrs []domain.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}
