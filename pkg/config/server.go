package config

import "time"

const (
	DefaultScannerLeaseDuration = 60 * time.Second
	DefaultSweeperInterval      = time.Second
	DefaultMaxScanBatch         = 1024
	DefaultServerPort           = "7001"
)

var cfgServer Server

type Server struct {
	LogLevel        string `json:"log_level" toml:"log_level" yaml:"log_level"`
	PrettyLogging   bool   `json:"pretty_logging" toml:"pretty_logging" yaml:"pretty_logging"`
	LogFile         string `json:"log_file" toml:"log_file" yaml:"log_file"`
	ServerID        string `json:"server_id" toml:"server_id" yaml:"server_id"`
	Host            string `json:"host" toml:"host" yaml:"host"`
	GrpcApiPort     string `json:"grpc_api_port" toml:"grpc_api_port" yaml:"grpc_api_port"`
	AdvertiseAddr   string `json:"advertise_addr" toml:"advertise_addr" yaml:"advertise_addr"`
	CoordinatorAddr string `json:"coordinator_addr" toml:"coordinator_addr" yaml:"coordinator_addr"`

	ScannerLeaseDuration time.Duration `json:"scanner_lease_duration" toml:"scanner_lease_duration" yaml:"scanner_lease_duration"`
	SweeperInterval      time.Duration `json:"sweeper_interval" toml:"sweeper_interval" yaml:"sweeper_interval"`
	MaxScanBatch         int           `json:"max_scan_batch" toml:"max_scan_batch" yaml:"max_scan_batch"`
}

// ApplyDefaults fills unset values.
func (s *Server) ApplyDefaults() {
	if s.GrpcApiPort == "" {
		s.GrpcApiPort = DefaultServerPort
	}
	if s.AdvertiseAddr == "" {
		host := s.Host
		if host == "" {
			host = "localhost"
		}
		s.AdvertiseAddr = host + ":" + s.GrpcApiPort
	}
	s.ScannerLeaseDuration = durationOr(s.ScannerLeaseDuration, DefaultScannerLeaseDuration)
	s.SweeperInterval = durationOr(s.SweeperInterval, DefaultSweeperInterval)
	s.MaxScanBatch = intOr(s.MaxScanBatch, DefaultMaxScanBatch)
}

func (s *Server) validate() error {
	return nonNegative(map[string]time.Duration{
		"scanner_lease_duration": s.ScannerLeaseDuration,
		"sweeper_interval":       s.SweeperInterval,
	})
}

// LoadServerCfg loads the entity-group server configuration from cfgPath and
// returns its JSON rendering.
func LoadServerCfg(cfgPath string) (string, error) {
	var scfg Server
	if err := loadFile(cfgPath, &scfg); err != nil {
		return "", err
	}
	if err := scfg.validate(); err != nil {
		return "", err
	}
	scfg.ApplyDefaults()
	cfgServer = scfg

	return render(&cfgServer)
}

func ServerConfig() *Server {
	return &cfgServer
}
