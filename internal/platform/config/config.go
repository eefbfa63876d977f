// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"netsweep/internal/core/domain"
	"netsweep/internal/core/ports"
	"netsweep/internal/platform/logx"
	"netsweep/internal/platform/validator"
	"netsweep/internal/platform/workerpool"
)

// EnvPrefix prefijo de todas las variables de entorno.
const EnvPrefix = "NETSWEEP_"

// AutoPrefix pide detectar el bloque /24 local.
const AutoPrefix = "auto"

var (
	strategies = []string{"auto", "parallel", "sequential"}
	uiModes    = []string{"pretty", "raw", "json", "quiet"}
	formats    = []string{"", "csv", "json"}
)

type Config struct {
	// Scan
	Prefix    string  `yaml:"prefix"`
	TimeoutMS int     `yaml:"timeout_ms"`
	Workers   int     `yaml:"workers"`
	Rate      float64 `yaml:"rate"` // sondas/s, 0 = sin límite
	Strategy  string  `yaml:"strategy"`
	Dispatch  string  `yaml:"dispatch"`
	Prober    string  `yaml:"prober"`

	// Probe ajustes del prober
	Probe Probe `yaml:"probe"`

	// Output
	Output Output `yaml:"output"`

	// Presentación
	UI       string `yaml:"ui"`
	LogLevel string `yaml:"log_level"`

	// Solo CLI
	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
	PrintHelp    bool   `yaml:"-"`
}

type Probe struct {
	TTL         int    `yaml:"ttl"`
	PayloadSize int    `yaml:"payload_size"`
	PingPath    string `yaml:"ping_path"`
}

type Output struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format"` // vacío = por extensión
	NoTable bool   `yaml:"no_table"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Prefix:    "192.168.1",
		TimeoutMS: 4000,
		Workers:   100,
		Strategy:  "auto",
		Dispatch:  "fifo",
		Prober:    "auto",

		Probe: Probe{
			TTL:         ports.DefaultTTL,
			PayloadSize: 16,
			PingPath:    "ping",
		},

		UI:       "pretty",
		LogLevel: "info",
	}
}

// Load construye la configuración: defaults -> archivo YAML -> ENV -> flags.
// Los argumentos posicionales [prefix [timeout_ms [output]]] solo aplican
// cuando el flag equivalente no se pasó.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	fv := flagValues{}
	fs := newFlagSet(&fv, cfg)
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	cfg.PrintHelp = fv.help
	cfg.PrintVersion = fv.version
	if cfg.PrintHelp || cfg.PrintVersion {
		return cfg, nil
	}

	// El archivo se elige antes de aplicar el resto de fuentes
	cfg.ConfigFile = getenv(EnvPrefix+"CONFIG", "")
	if fs.Changed("config") {
		cfg.ConfigFile = fv.config
	}
	if cfg.ConfigFile != "" {
		if err := loadFile(cfg.ConfigFile, &cfg); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)
	applyFlags(fs, fv, &cfg)

	if err := applyPositional(fs, fs.Args(), &cfg); err != nil {
		return cfg, err
	}

	normalize(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// flagValues guarda lo parseado por pflag hasta saber qué flags cambiaron.
type flagValues struct {
	prefix    string
	timeoutMS int
	output    string
	format    string
	noTable   bool
	workers   int
	rate      float64
	strategy  string
	dispatch  string
	prober    string
	ttl       int
	pingPath  string
	ui        string
	logLevel  string
	config    string
	version   bool
	help      bool
}

func newFlagSet(fv *flagValues, def Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("netsweep", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}

	fs.StringVarP(&fv.prefix, "prefix", "p", def.Prefix, "Three-octet prefix of the /24 to sweep (\"auto\" detects it)")
	fs.IntVarP(&fv.timeoutMS, "timeout", "t", def.TimeoutMS, "Per-probe timeout in milliseconds")
	fs.StringVarP(&fv.output, "output", "o", def.Output.Path, "Write responders to this file")
	fs.StringVarP(&fv.format, "format", "f", def.Output.Format, "Output file format: csv or json (default: by extension)")
	fs.BoolVar(&fv.noTable, "no-table", def.Output.NoTable, "Do not print the results table")
	fs.IntVarP(&fv.workers, "workers", "w", def.Workers, "Maximum probes in flight")
	fs.Float64Var(&fv.rate, "rate", def.Rate, "Maximum probes per second (0 = unlimited)")
	fs.StringVar(&fv.strategy, "strategy", def.Strategy, "Scheduler strategy: auto, parallel or sequential")
	fs.StringVar(&fv.dispatch, "dispatch", def.Dispatch, "Dispatch order: fifo or shuffle")
	fs.StringVar(&fv.prober, "prober", def.Prober, "Prober: auto, icmp, udp or exec")
	fs.IntVar(&fv.ttl, "ttl", def.Probe.TTL, "TTL of the echo request")
	fs.StringVar(&fv.pingPath, "ping-path", def.Probe.PingPath, "ping binary used by the exec prober")
	fs.StringVar(&fv.ui, "ui", def.UI, "UI mode: pretty, raw, json or quiet")
	fs.StringVar(&fv.logLevel, "log-level", def.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVarP(&fv.config, "config", "c", "", "YAML configuration file")
	fs.BoolVarP(&fv.version, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&fv.help, "help", "h", false, "Show this help message")

	return fs
}

// applyFlags copia solo los flags pasados explícitamente.
func applyFlags(fs *pflag.FlagSet, fv flagValues, cfg *Config) {
	if fs.Changed("prefix") {
		cfg.Prefix = fv.prefix
	}
	if fs.Changed("timeout") {
		cfg.TimeoutMS = fv.timeoutMS
	}
	if fs.Changed("output") {
		cfg.Output.Path = fv.output
	}
	if fs.Changed("format") {
		cfg.Output.Format = fv.format
	}
	if fs.Changed("no-table") {
		cfg.Output.NoTable = fv.noTable
	}
	if fs.Changed("workers") {
		cfg.Workers = fv.workers
	}
	if fs.Changed("rate") {
		cfg.Rate = fv.rate
	}
	if fs.Changed("strategy") {
		cfg.Strategy = fv.strategy
	}
	if fs.Changed("dispatch") {
		cfg.Dispatch = fv.dispatch
	}
	if fs.Changed("prober") {
		cfg.Prober = fv.prober
	}
	if fs.Changed("ttl") {
		cfg.Probe.TTL = fv.ttl
	}
	if fs.Changed("ping-path") {
		cfg.Probe.PingPath = fv.pingPath
	}
	if fs.Changed("ui") {
		cfg.UI = fv.ui
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
}

func applyPositional(fs *pflag.FlagSet, args []string, cfg *Config) error {
	if len(args) > 3 {
		return fmt.Errorf("%w: too many arguments (usage: netsweep [prefix [timeout_ms [output]]])", domain.ErrInvalidConfig)
	}
	if len(args) > 0 && !fs.Changed("prefix") {
		cfg.Prefix = args[0]
	}
	if len(args) > 1 && !fs.Changed("timeout") {
		ms, err := strconv.Atoi(strings.TrimSpace(args[1]))
		if err != nil {
			return fmt.Errorf("%w: %q is not a number of milliseconds", domain.ErrInvalidTimeout, args[1])
		}
		cfg.TimeoutMS = ms
	}
	if len(args) > 2 && !fs.Changed("output") {
		cfg.Output.Path = args[2]
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvPrefix+"PREFIX", ""); v != "" {
		cfg.Prefix = v
	}
	if v := getenv(EnvPrefix+"TIMEOUT_MS", ""); v != "" {
		cfg.TimeoutMS = parseInt(v, cfg.TimeoutMS)
	}
	if v := getenv(EnvPrefix+"WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv(EnvPrefix+"RATE", ""); v != "" {
		cfg.Rate = parseFloat(v, cfg.Rate)
	}
	if v := getenv(EnvPrefix+"STRATEGY", ""); v != "" {
		cfg.Strategy = v
	}
	if v := getenv(EnvPrefix+"DISPATCH", ""); v != "" {
		cfg.Dispatch = v
	}
	if v := getenv(EnvPrefix+"PROBER", ""); v != "" {
		cfg.Prober = v
	}
	if v := getenv(EnvPrefix+"TTL", ""); v != "" {
		cfg.Probe.TTL = parseInt(v, cfg.Probe.TTL)
	}
	if v := getenv(EnvPrefix+"PING_PATH", ""); v != "" {
		cfg.Probe.PingPath = v
	}

	// Output
	if v := getenv(EnvPrefix+"OUTPUT", ""); v != "" {
		cfg.Output.Path = v
	}
	if v := getenv(EnvPrefix+"FORMAT", ""); v != "" {
		cfg.Output.Format = v
	}
	if v := getenv(EnvPrefix+"NO_TABLE", ""); v != "" {
		cfg.Output.NoTable = parseBool(v)
	}

	if v := getenv(EnvPrefix+"UI", ""); v != "" {
		cfg.UI = v
	}
	if v := getenv(logx.EnvLevel, ""); v != "" {
		cfg.LogLevel = v
	}
}

func normalize(c *Config) {
	c.Prefix = strings.TrimSpace(c.Prefix)
	if strings.EqualFold(c.Prefix, AutoPrefix) {
		c.Prefix = AutoPrefix
	} else if p := validator.NormalizePrefix24(c.Prefix); p != "" {
		c.Prefix = p
	}

	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.Dispatch = strings.ToLower(strings.TrimSpace(c.Dispatch))
	c.Prober = strings.ToLower(strings.TrimSpace(c.Prober))
	c.UI = strings.ToLower(strings.TrimSpace(c.UI))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))

	if c.Strategy == "" {
		c.Strategy = "auto"
	}
	if c.Dispatch == "" {
		c.Dispatch = "fifo"
	}
	if c.Prober == "" {
		c.Prober = "auto"
	}
	if c.UI == "" {
		c.UI = "pretty"
	}
}

// Validate rechaza valores fuera de rango en lugar de ajustarlos.
func (c Config) Validate() error {
	if c.Prefix != AutoPrefix {
		if _, err := domain.ParsePrefix(c.Prefix); err != nil {
			return err
		}
	}
	if c.TimeoutMS <= 0 {
		return fmt.Errorf("%w: %d ms", domain.ErrInvalidTimeout, c.TimeoutMS)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d workers", domain.ErrInvalidConcurrency, c.Workers)
	}
	if c.Rate < 0 {
		return fmt.Errorf("%w: rate %.1f must be >= 0", domain.ErrInvalidConfig, c.Rate)
	}
	if !validator.OneOf(c.Strategy, strategies...) {
		return invalid("strategy", c.Strategy, strategies)
	}
	if !validator.OneOf(c.Dispatch, workerpool.SchedulerNames...) {
		return invalid("dispatch", c.Dispatch, workerpool.SchedulerNames)
	}
	if !validator.OneOf(c.UI, uiModes...) {
		return invalid("ui", c.UI, uiModes)
	}
	if !validator.OneOf(c.Output.Format, formats...) {
		return invalid("format", c.Output.Format, formats[1:])
	}
	if !logx.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}
	if c.Probe.TTL < 1 || c.Probe.TTL > 255 {
		return fmt.Errorf("%w: ttl %d out of range [1, 255]", domain.ErrInvalidConfig, c.Probe.TTL)
	}
	return nil
}

func invalid(field, value string, allowed []string) error {
	return fmt.Errorf("%w: unknown %s %q (valid: %s)", domain.ErrInvalidConfig, field, value, strings.Join(allowed, ", "))
}

// Timeout devuelve el timeout por sonda como time.Duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// ProberConfig traduce la sección probe al formato del registry.
func (c Config) ProberConfig() ports.ProberConfig {
	pc := ports.DefaultProberConfig()
	pc.TTL = c.Probe.TTL
	if c.Probe.PayloadSize > 0 {
		pc.Custom["payload_size"] = c.Probe.PayloadSize
	}
	if c.Probe.PingPath != "" {
		pc.Custom["ping_path"] = c.Probe.PingPath
	}
	return pc
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}
