// internal/adapters/probe/icmp.go
package probe

import (
	"context"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/errors"
	"netsweep/internal/platform/logx"
)

const (
	networkRaw      = "ip4:icmp"
	networkDatagram = "udp4"
	listenAddr      = "0.0.0.0"

	// protocolICMP número de protocolo IANA de ICMPv4
	protocolICMP = 1

	maxReplySize       = 1500
	defaultPayloadSize = 16
)

// ICMPProber envía un echo request por sonda usando golang.org/x/net/icmp.
// Cada sonda abre su propio socket, así las respuestas no se comparten
// entre goroutines.
type ICMPProber struct {
	name       string
	network    string
	privileged bool
	ttl        int
	id         int
	payload    []byte
	seq        atomic.Uint32
	logger     logx.Logger

	// listen se reemplaza en tests
	listen func(network, address string) (*icmp.PacketConn, error)
}

// ICMPOptions configura un ICMPProber.
type ICMPOptions struct {
	// Privileged usa un socket raw (ip4:icmp); si es false usa un socket
	// datagram ICMP (udp4) que no requiere root en Linux y macOS.
	Privileged bool

	TTL         int
	PayloadSize int

	// Preflight abre y cierra un socket al construir el prober
	Preflight bool
}

// NewICMPProber crea un prober ICMP. Con Preflight verifica que el socket
// se pueda abrir para que un permiso faltante se reporte una sola vez.
func NewICMPProber(opts ICMPOptions, logger logx.Logger) (*ICMPProber, error) {
	if logger == nil {
		logger = logx.New()
	}
	if opts.TTL <= 0 {
		opts.TTL = ports.DefaultTTL
	}
	if opts.PayloadSize < 0 {
		opts.PayloadSize = 0
	}

	p := &ICMPProber{
		name:       "udp",
		network:    networkDatagram,
		privileged: opts.Privileged,
		ttl:        opts.TTL,
		id:         os.Getpid() & 0xffff,
		payload:    makePayload(opts.PayloadSize),
		listen:     icmp.ListenPacket,
	}
	if opts.Privileged {
		p.name = "icmp"
		p.network = networkRaw
	}
	p.logger = logger.With("component", "prober", "prober", p.name)

	if opts.Preflight {
		if err := p.Preflight(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func makePayload(n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte('a' + i%26)
	}
	return payload
}

// Name retorna el nombre del prober.
func (p *ICMPProber) Name() string {
	return p.name
}

// Preflight abre y cierra un socket del tipo configurado.
func (p *ICMPProber) Preflight() error {
	conn, err := p.listen(p.network, listenAddr)
	if err != nil {
		if errors.IsPermissionDenied(err) {
			return errors.Wrapf(errors.ErrPermissionDenied, "open %s socket (%v)", p.network, err)
		}
		return errors.Wrapf(err, "open %s socket", p.network)
	}
	return conn.Close()
}

// Probe implementa ports.Prober.
func (p *ICMPProber) Probe(ctx context.Context, addr domain.Address, timeout time.Duration) (ports.ProbeReply, error) {
	dst := net.ParseIP(string(addr)).To4()
	if dst == nil {
		return ports.ProbeReply{}, errors.Wrapf(errors.ErrInvalidInput, "parse address %q", addr)
	}

	conn, err := p.listen(p.network, listenAddr)
	if err != nil {
		return ports.ProbeReply{}, errors.Wrapf(err, "open %s socket", p.network)
	}
	defer conn.Close()

	if pc := conn.IPv4PacketConn(); pc != nil {
		if err := pc.SetTTL(p.ttl); err != nil {
			p.logger.Debug("set ttl failed", "error", err.Error())
		}
	}

	seq := int(p.seq.Add(1) & 0xffff)
	wire, err := (&icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   p.id,
			Seq:  seq,
			Data: p.payload,
		},
	}).Marshal(nil)
	if err != nil {
		return ports.ProbeReply{}, errors.Wrapf(err, "marshal echo for %s", addr)
	}

	start := time.Now()
	deadline := start.Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return ports.ProbeReply{}, errors.Wrap(err, "set read deadline")
	}
	// cancelling the scan unblocks ReadFrom immediately
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()

	if _, err := conn.WriteTo(wire, p.peer(dst)); err != nil {
		if ctx.Err() != nil {
			return ports.ProbeReply{}, nil
		}
		return ports.ProbeReply{}, errors.Wrapf(err, "send echo to %s", addr)
	}

	buf := make([]byte, maxReplySize)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if errors.IsTimeout(err) || ctx.Err() != nil {
				return ports.ProbeReply{}, nil
			}
			return ports.ProbeReply{}, errors.Wrapf(err, "read reply from %s", addr)
		}
		if matchReply(buf[:n], from, dst, p.id, seq, p.privileged) {
			return ports.ProbeReply{Reachable: true, RTT: time.Since(start)}, nil
		}
	}
}

// peer arma la dirección destino según el tipo de socket.
func (p *ICMPProber) peer(ip net.IP) net.Addr {
	if p.privileged {
		return &net.IPAddr{IP: ip}
	}
	return &net.UDPAddr{IP: ip}
}

// Close implementa ports.Prober. Los sockets viven solo durante cada sonda.
func (p *ICMPProber) Close() error {
	return nil
}

// matchReply indica si b es el echo reply de la sonda (id, seq) enviada a dst.
// En sockets datagram el kernel reescribe el ID, por eso checkID es opcional.
func matchReply(b []byte, from net.Addr, dst net.IP, id, seq int, checkID bool) bool {
	msg, err := icmp.ParseMessage(protocolICMP, b)
	if err != nil {
		return false
	}
	if msg.Type != ipv4.ICMPTypeEchoReply {
		return false
	}
	echo, ok := msg.Body.(*icmp.Echo)
	if !ok {
		return false
	}
	if checkID && echo.ID != id {
		return false
	}
	if echo.Seq != seq {
		return false
	}
	return peerIP(from).Equal(dst)
}

func peerIP(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPAddr:
		return v.IP
	case *net.UDPAddr:
		return v.IP
	default:
		return nil
	}
}
