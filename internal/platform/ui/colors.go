// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta "Sonar": verdes de pantalla de radar sobre fondo oscuro

// Colores primarios
var (
	// EchoGreen - Respuesta recibida, host vivo
	EchoGreen = pterm.NewRGB(57, 255, 20)

	// SignalRed - Errores de sonda
	SignalRed = pterm.NewRGB(215, 38, 56)

	// BeaconAmber - Warnings y contadores
	BeaconAmber = pterm.NewRGB(255, 182, 39)

	// NoiseGray - Texto secundario, direcciones silenciosas
	NoiseGray = pterm.NewRGB(110, 110, 110)

	// SweepCyan - Acentos, subred y prober
	SweepCyan = pterm.NewRGB(0, 206, 209)
)

// Estilos preconfigurados
var (
	StyleSuccess   = EchoGreen.ToRGBStyle()
	StyleError     = SignalRed.ToRGBStyle()
	StyleWarning   = BeaconAmber.ToRGBStyle()
	StyleSecondary = NoiseGray.ToRGBStyle()
	StyleAccent    = SweepCyan.ToRGBStyle()
)
