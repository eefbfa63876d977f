// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar el banner, la barra de progreso y los hosts vivos.
type PTermPresenter struct {
	mu sync.Mutex

	scanInfo      ScanInfo
	scanStartTime time.Time

	// Barra de progreso activa (nil antes de Start y después de Finish)
	bar  *pterm.ProgressbarPrinter
	done int
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Start inicia la presentación mostrando el header del escaneo
func (p *PTermPresenter) Start(info ScanInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.scanInfo = info
	p.scanStartTime = time.Now()
	p.done = 0

	// Header principal
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("netsweep - ICMP Subnet Sweep")

	pterm.Println()

	pterm.DefaultSection.Println("Scan Configuration")

	infoPanel := pterm.DefaultBox.
		WithTitle("Target Subnet").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	targetInfo := fmt.Sprintf("%s Subnet: %s\n", IconTarget, StyleAccent.Sprint(info.Subnet))
	targetInfo += fmt.Sprintf("   Addresses: %d\n", info.Addresses)
	targetInfo += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	targetInfo += fmt.Sprintf("%s Timeout: %s\n", IconTime, formatDuration(info.Timeout))
	targetInfo += fmt.Sprintf("   Strategy: %s\n", StyleWarning.Sprint(info.Strategy))
	targetInfo += fmt.Sprintf("%s Prober: %s", IconProbe, StyleAccent.Sprint(info.Prober))

	infoPanel.Println(targetInfo)

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	if info.Addresses > 0 {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(info.Addresses).
			WithTitle("Probing " + info.Subnet).
			WithRemoveWhenDone(true).
			Start()
		if err == nil {
			p.bar = bar
		}
	}
}

// HostAlive imprime una línea por host que respondió
func (p *PTermPresenter) HostAlive(host HostInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := fmt.Sprintf("%s %s", StatusAlive.Symbol(), StatusAlive.Style().Sprint(host.Address))
	if host.RTT > 0 {
		line += StyleSecondary.Sprintf(" (%s)", formatRTT(host.RTT))
	}
	pterm.Println(line)
}

// Progress avanza la barra hasta done
func (p *PTermPresenter) Progress(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil || done <= p.done {
		return
	}
	p.bar.Add(done - p.done)
	p.done = done
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Finish finaliza la presentación con estadísticas finales
func (p *PTermPresenter) Finish(stats ScanStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopBar()

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	title, bg := "Scan Completed", pterm.BgGreen
	if stats.Canceled {
		title, bg = "Scan Interrupted", pterm.BgYellow
	}

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(bg)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println(title)

	pterm.Println()

	statsPanel := pterm.DefaultBox.
		WithTitle("Scan Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	statsContent := fmt.Sprintf("%s Total Duration: %s\n",
		IconTime,
		pterm.Green(formatDuration(stats.TotalDuration)),
	)
	statsContent += fmt.Sprintf("%s Alive Hosts: %s\n",
		IconSuccess,
		StyleSuccess.Sprintf("%d", stats.Alive),
	)
	statsContent += fmt.Sprintf("   Probed: %s",
		StyleWarning.Sprintf("%d", stats.Probed),
	)

	if stats.Failed > 0 {
		statsContent += fmt.Sprintf("\n%s Probe Errors: %s",
			IconError,
			StyleError.Sprintf("%d", stats.Failed),
		)
	}

	if stats.Canceled {
		statsContent += fmt.Sprintf("\n%s Partial: %s", IconWarning, boolToString(true))
	}

	statsPanel.Println(statsContent)
	pterm.Println()
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopBar()
	return nil
}

// stopBar detiene la barra activa. Requiere p.mu.
func (p *PTermPresenter) stopBar() {
	if p.bar == nil {
		return
	}
	_, _ = p.bar.Stop()
	p.bar = nil
}
