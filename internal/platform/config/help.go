// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
netsweep - ICMP liveness sweep of a /24 subnet

USAGE:
  netsweep [options] [prefix [timeout_ms [output]]]

CORE OPTIONS:
  -p, --prefix string      Three-octet prefix, e.g. 192.168.1 (default: "192.168.1")
                           Also accepts 192.168.1.0/24. Use "auto" to detect the local /24
  -t, --timeout int        Per-probe timeout in milliseconds (default: 4000)
  -w, --workers int        Maximum probes in flight (default: 100)
      --rate float         Maximum probes per second, 0 = unlimited (default: 0)
      --strategy string    auto, parallel or sequential (default: "auto")
      --dispatch string    fifo or shuffle (default: "fifo")

PROBE OPTIONS:
      --prober string      auto, icmp, udp or exec (default: "auto")
                           auto tries icmp (raw socket), then udp, then the ping binary
      --ttl int            TTL of the echo request (default: 64)
      --ping-path string   ping binary for the exec prober (default: "ping")

OUTPUT OPTIONS:
  -o, --output string      Write responders to this file (optional)
  -f, --format string      csv or json (default: by file extension, csv otherwise)
      --no-table           Do not print the results table
      --ui string          pretty, raw, json or quiet (default: "pretty")
      --log-level string   debug, info, warn or error (default: "info")

INFO:
  -c, --config string      YAML configuration file
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Sweep the default subnet:
    netsweep

  Positional form, 2s timeout, CSV output:
    netsweep 10.0.0 2000 alive.csv

  Sequential sweep with JSON event lines:
    netsweep -p 172.16.5 --strategy sequential --ui json

  Without root, using the system ping:
    netsweep -p 192.168.0 --prober exec

ENVIRONMENT VARIABLES:
  NETSWEEP_PREFIX, NETSWEEP_TIMEOUT_MS, NETSWEEP_WORKERS, NETSWEEP_RATE, NETSWEEP_STRATEGY,
  NETSWEEP_DISPATCH, NETSWEEP_PROBER, NETSWEEP_TTL, NETSWEEP_PING_PATH,
  NETSWEEP_OUTPUT, NETSWEEP_FORMAT, NETSWEEP_NO_TABLE, NETSWEEP_UI,
  NETSWEEP_LOG_LEVEL, NETSWEEP_CONFIG

  Precedence: defaults < config file < environment < flags.

EXIT CODES:
  0  scan completed
  1  output file could not be written, or the scan was interrupted
  2  invalid configuration or no usable prober
`

// PrintHelp escribe la ayuda.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion escribe la información de versión.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "netsweep %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
