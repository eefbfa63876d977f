// internal/core/usecases/collector.go
package usecases

import (
	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
)

// collector es el único escritor del ResultSet de un barrido.
type collector struct {
	rs        *domain.ResultSet
	onOutcome func(domain.ProbeOutcome)
	logger    logx.Logger
}

func newCollector(rs *domain.ResultSet, opts ports.ScanOptions, logger logx.Logger) *collector {
	return &collector{rs: rs, onOutcome: opts.OnOutcome, logger: logger}
}

func (c *collector) record(o domain.ProbeOutcome, err error) {
	if err != nil {
		c.logger.Debug("probe failed", "addr", o.Address, "error", err.Error())
		if o.Err == nil {
			o.Err = err
		}
	}
	if c.rs.Record(o) {
		c.logger.Debug("host alive", "addr", o.Address, "rtt_ms", o.RTT.Milliseconds())
	}
	if c.onOutcome != nil {
		c.onOutcome(o)
	}
}
