// internal/adapters/probe/exec_ping.go
package probe

import (
	"context"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/errors"
	"netsweep/internal/platform/logx"
	"netsweep/internal/platform/validator"
)

// runFunc ejecuta un comando y retorna su error de salida.
type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// ExecProber delega cada sonda en el binario ping del sistema.
// Exit status 0 significa que el host respondió.
type ExecProber struct {
	path   string
	goos   string
	ttl    int
	logger logx.Logger

	// run se reemplaza en tests
	run runFunc
}

// ExecOptions configura un ExecProber.
type ExecOptions struct {
	// Path binario ping (nombre o ruta); vacío = "ping"
	Path string
	TTL  int
}

// NewExecProber crea un prober basado en ping. Resuelve el binario con
// LookPath al construirse; si no existe retorna ErrNotFound.
func NewExecProber(opts ExecOptions, logger logx.Logger) (*ExecProber, error) {
	if logger == nil {
		logger = logx.New()
	}
	if opts.Path == "" {
		opts.Path = "ping"
	}
	if opts.TTL <= 0 {
		opts.TTL = ports.DefaultTTL
	}

	resolved, err := exec.LookPath(opts.Path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "ping binary %q (%v)", opts.Path, err)
	}

	return &ExecProber{
		path:   resolved,
		goos:   runtime.GOOS,
		ttl:    opts.TTL,
		logger: logger.With("component", "prober", "prober", "exec"),
		run:    runCommand,
	}, nil
}

// Name retorna el nombre del prober.
func (p *ExecProber) Name() string {
	return "exec"
}

// Probe implementa ports.Prober.
func (p *ExecProber) Probe(ctx context.Context, addr domain.Address, timeout time.Duration) (ports.ProbeReply, error) {
	// la dirección va como argumento de ping: nunca puede parecer un flag
	if !validator.IsIPv4(string(addr)) {
		return ports.ProbeReply{}, errors.Wrapf(errors.ErrInvalidInput, "address %q", addr)
	}

	args := PingArgs(p.goos, string(addr), timeout, p.ttl)

	start := time.Now()
	err := p.run(ctx, p.path, args...)
	if err == nil {
		return ports.ProbeReply{Reachable: true, RTT: time.Since(start)}, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return ports.ProbeReply{}, errors.Wrapf(errors.ErrNotFound, "ping binary %q", p.path)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) || ctx.Err() != nil {
		// sin respuesta, host inalcanzable o proceso cortado por el contexto
		return ports.ProbeReply{}, nil
	}

	return ports.ProbeReply{}, errors.Wrapf(err, "run %s", p.path)
}

// Close implementa ports.Prober.
func (p *ExecProber) Close() error {
	return nil
}

// PingArgs traduce una sonda a los argumentos del ping de cada sistema:
// un único echo, TTL fijo y el timeout en la unidad que espera cada ping.
func PingArgs(goos, addr string, timeout time.Duration, ttl int) []string {
	ms := timeout.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	ttlArg := strconv.Itoa(ttl)

	switch goos {
	case "windows":
		return []string{"-n", "1", "-w", strconv.FormatInt(ms, 10), "-i", ttlArg, addr}
	case "darwin", "freebsd", "netbsd", "openbsd", "dragonfly":
		return []string{"-c", "1", "-W", strconv.FormatInt(ms, 10), "-m", ttlArg, addr}
	default:
		// iputils: -W en segundos enteros
		secs := (ms + 999) / 1000
		return []string{"-c", "1", "-W", strconv.FormatInt(secs, 10), "-t", ttlArg, addr}
	}
}
