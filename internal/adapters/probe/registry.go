package probe

import (
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
	"netsweep/internal/platform/registry"
)

// Auto-registration on package import using registry helpers
func init() {
	probers := []struct {
		factory registry.ProberFactory
		meta    ports.ProberMetadata
	}{
		{icmpFactory, ports.ProberMetadata{
			Name:              "icmp",
			Description:       "ICMP echo over a raw socket (root or CAP_NET_RAW)",
			RequiresPrivilege: true,
			Priority:          30,
		}},
		{udpFactory, ports.ProberMetadata{
			Name:        "udp",
			Description: "ICMP echo over an unprivileged datagram socket",
			Priority:    20,
		}},
		{execFactory, ports.ProberMetadata{
			Name:        "exec",
			Description: "system ping binary, one echo per address",
			Priority:    10,
		}},
	}

	for _, p := range probers {
		if err := registry.Global().Register(p.meta.Name, p.factory, p.meta); err != nil {
			// Log error but don't panic - allow application to start
			logx.New().Warn("failed to register prober", "prober", p.meta.Name, "error", err.Error())
		}
	}
}

func icmpOptions(cfg ports.ProberConfig, privileged bool) (ICMPOptions, error) {
	if err := registry.ValidateIntRange("ttl", cfg.TTL, 1, 255); err != nil {
		return ICMPOptions{}, err
	}
	return ICMPOptions{
		Privileged:  privileged,
		TTL:         cfg.TTL,
		PayloadSize: registry.GetIntConfig(cfg.Custom, "payload_size", defaultPayloadSize),
		Preflight:   registry.GetBoolConfig(cfg.Custom, "preflight", true),
	}, nil
}

func icmpFactory(cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error) {
	opts, err := icmpOptions(cfg, true)
	if err != nil {
		return nil, err
	}
	prober, err := NewICMPProber(opts, logger)
	if err != nil {
		return nil, err
	}
	return prober, nil
}

func udpFactory(cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error) {
	opts, err := icmpOptions(cfg, false)
	if err != nil {
		return nil, err
	}
	prober, err := NewICMPProber(opts, logger)
	if err != nil {
		return nil, err
	}
	return prober, nil
}

func execFactory(cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error) {
	if err := registry.ValidateIntRange("ttl", cfg.TTL, 1, 255); err != nil {
		return nil, err
	}
	prober, err := NewExecProber(ExecOptions{
		Path: registry.GetStringConfig(cfg.Custom, "ping_path", "ping"),
		TTL:  cfg.TTL,
	}, logger)
	if err != nil {
		return nil, err
	}
	return prober, nil
}
