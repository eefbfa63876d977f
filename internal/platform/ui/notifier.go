// internal/platform/ui/notifier.go
package ui

import (
	"context"
	"fmt"

	"netsweep/internal/core/ports"
)

// PresenterNotifier adapta los eventos del barrido a llamadas al Presenter.
type PresenterNotifier struct {
	presenter Presenter
}

// NewNotifier envuelve un Presenter como observer del SweepService.
func NewNotifier(p Presenter) *PresenterNotifier {
	if p == nil {
		p = NewNoopPresenter()
	}
	return &PresenterNotifier{presenter: p}
}

// Notify traduce el evento. El render es síncrono y no depende de ctx:
// el resumen final tiene que dibujarse aunque el barrido se haya cancelado.
// Un payload de tipo inesperado es un error.
func (n *PresenterNotifier) Notify(_ context.Context, event ports.Event) error {
	switch event.Type {
	case ports.EventTypeScanStarted:
		data, ok := event.Data.(ports.ScanStartedEvent)
		if !ok {
			return unexpectedPayload(event)
		}
		n.presenter.Start(ScanInfo{
			Subnet:    data.Prefix.CIDR(),
			Addresses: data.Total,
			Workers:   data.Concurrency,
			Timeout:   data.Timeout,
			Strategy:  data.Strategy,
			Prober:    data.Prober,
		})

	case ports.EventTypeHostAlive:
		data, ok := event.Data.(ports.HostAliveEvent)
		if !ok {
			return unexpectedPayload(event)
		}
		n.presenter.HostAlive(HostInfo{
			Address:   data.Outcome.Address.String(),
			RTT:       data.Outcome.RTT,
			Timestamp: data.Outcome.Timestamp,
		})

	case ports.EventTypeProbeCompleted:
		data, ok := event.Data.(ports.ProbeCompletedEvent)
		if !ok {
			return unexpectedPayload(event)
		}
		n.presenter.Progress(data.Done, data.Total)

	case ports.EventTypeScanCompleted:
		data, ok := event.Data.(ports.ScanCompletedEvent)
		if !ok {
			return unexpectedPayload(event)
		}
		n.presenter.Finish(ScanStats{
			TotalDuration: data.Stats.Duration,
			Alive:         data.Stats.Alive,
			Probed:        data.Stats.Probed,
			Failed:        data.Stats.Failed,
			Canceled:      data.Canceled,
		})
	}

	return nil
}

// Close cierra el presenter subyacente
func (n *PresenterNotifier) Close() error {
	return n.presenter.Close()
}

func unexpectedPayload(event ports.Event) error {
	return fmt.Errorf("event %s: unexpected payload %T", event.Type, event.Data)
}

var _ ports.Notifier = (*PresenterNotifier)(nil)
