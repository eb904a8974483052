package config

import "time"

const (
	DefaultMaxRetries      = 8
	DefaultBackoffBase     = 10 * time.Millisecond
	DefaultBackoffMax      = time.Second
	DefaultAttemptTimeout  = 5 * time.Second
	DefaultResolveTimeout  = 5 * time.Second
	DefaultScanBatchSize   = 128
	DefaultMaxScanRestarts = 3
)

var cfgRouter Router

// Router configures the client-side routing layer.
type Router struct {
	LogLevel        string `json:"log_level" toml:"log_level" yaml:"log_level"`
	PrettyLogging   bool   `json:"pretty_logging" toml:"pretty_logging" yaml:"pretty_logging"`
	CoordinatorAddr string `json:"coordinator_addr" toml:"coordinator_addr" yaml:"coordinator_addr"`

	// zero selects the default, negative disables retries
	MaxRetries      int           `json:"max_retries" toml:"max_retries" yaml:"max_retries"`
	BackoffBase     time.Duration `json:"backoff_base" toml:"backoff_base" yaml:"backoff_base"`
	BackoffMax      time.Duration `json:"backoff_max" toml:"backoff_max" yaml:"backoff_max"`
	AttemptTimeout  time.Duration `json:"attempt_timeout" toml:"attempt_timeout" yaml:"attempt_timeout"`
	ResolveTimeout  time.Duration `json:"resolve_timeout" toml:"resolve_timeout" yaml:"resolve_timeout"`
	ScanBatchSize   int           `json:"scan_batch_size" toml:"scan_batch_size" yaml:"scan_batch_size"`
	MaxScanRestarts int           `json:"max_scan_restarts" toml:"max_scan_restarts" yaml:"max_scan_restarts"`
}

// ApplyDefaults fills unset values. It is exported so that programmatic
// callers can build a Router config without a file.
func (r *Router) ApplyDefaults() {
	if r.MaxRetries == 0 {
		r.MaxRetries = DefaultMaxRetries
	}
	r.BackoffBase = durationOr(r.BackoffBase, DefaultBackoffBase)
	r.BackoffMax = durationOr(r.BackoffMax, DefaultBackoffMax)
	r.AttemptTimeout = durationOr(r.AttemptTimeout, DefaultAttemptTimeout)
	r.ResolveTimeout = durationOr(r.ResolveTimeout, DefaultResolveTimeout)
	r.ScanBatchSize = intOr(r.ScanBatchSize, DefaultScanBatchSize)
	// negative disables restarts
	if r.MaxScanRestarts == 0 {
		r.MaxScanRestarts = DefaultMaxScanRestarts
	}
}

// Retries is the number of resends allowed after the first attempt.
func (r *Router) Retries() uint64 {
	if r.MaxRetries < 0 {
		return 0
	}
	return uint64(r.MaxRetries)
}

func (r *Router) validate() error {
	return nonNegative(map[string]time.Duration{
		"backoff_base":    r.BackoffBase,
		"backoff_max":     r.BackoffMax,
		"attempt_timeout": r.AttemptTimeout,
		"resolve_timeout": r.ResolveTimeout,
	})
}

// LoadRouterCfg loads the router configuration from cfgPath and returns its
// JSON rendering.
func LoadRouterCfg(cfgPath string) (string, error) {
	var rcfg Router
	if err := loadFile(cfgPath, &rcfg); err != nil {
		return "", err
	}
	if err := rcfg.validate(); err != nil {
		return "", err
	}
	rcfg.ApplyDefaults()
	cfgRouter = rcfg

	return render(&cfgRouter)
}

func RouterConfig() *Router {
	return &cfgRouter
}
