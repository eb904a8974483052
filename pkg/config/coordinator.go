package config

const (
	DefaultTransferBatchSize = 512
	DefaultCoordinatorPort   = "7000"
)

var cfgCoordinator Coordinator

type Coordinator struct {
	LogLevel         string `json:"log_level" toml:"log_level" yaml:"log_level"`
	PrettyLogging    bool   `json:"pretty_logging" toml:"pretty_logging" yaml:"pretty_logging"`
	LogFile          string `json:"log_file" toml:"log_file" yaml:"log_file"`
	QdbType          string `json:"qdb_type" toml:"qdb_type" yaml:"qdb_type"`
	QdbAddr          string `json:"qdb_addr" toml:"qdb_addr" yaml:"qdb_addr"`
	MemqdbBackupPath string `json:"memqdb_backup_path" toml:"memqdb_backup_path" yaml:"memqdb_backup_path"`
	Host             string `json:"host" toml:"host" yaml:"host"`
	GrpcApiPort      string `json:"grpc_api_port" toml:"grpc_api_port" yaml:"grpc_api_port"`

	TransferBatchSize int `json:"transfer_batch_size" toml:"transfer_batch_size" yaml:"transfer_batch_size"`
}

func (c *Coordinator) applyDefaults() {
	if c.QdbType == "" {
		c.QdbType = "mem"
	}
	if c.GrpcApiPort == "" {
		c.GrpcApiPort = DefaultCoordinatorPort
	}
	c.TransferBatchSize = intOr(c.TransferBatchSize, DefaultTransferBatchSize)
}

// LoadCoordinatorCfg loads the coordinator configuration from cfgPath and
// returns its JSON rendering.
func LoadCoordinatorCfg(cfgPath string) (string, error) {
	var ccfg Coordinator
	if err := loadFile(cfgPath, &ccfg); err != nil {
		return "", err
	}
	ccfg.applyDefaults()
	cfgCoordinator = ccfg

	return render(&cfgCoordinator)
}

func CoordinatorConfig() *Coordinator {
	return &cfgCoordinator
}
