package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadServerCfgYaml(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "server.yaml", `
log_level: debug
server_id: srv1
host: 127.0.0.1
grpc_api_port: "7101"
coordinator_addr: 127.0.0.1:7000
scanner_lease_duration: 1s
sweeper_interval: 200ms
`)

	rendered, err := LoadServerCfg(path)
	require.NoError(t, err)
	assert.Contains(rendered, `"server_id": "srv1"`)

	cfg := ServerConfig()
	assert.Equal("srv1", cfg.ServerID)
	assert.Equal("127.0.0.1:7101", cfg.AdvertiseAddr)
	assert.Equal(time.Second, cfg.ScannerLeaseDuration)
	assert.Equal(200*time.Millisecond, cfg.SweeperInterval)
	assert.Equal(DefaultMaxScanBatch, cfg.MaxScanBatch)
}

func TestLoadRouterCfgToml(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "router.toml", `
coordinator_addr = "localhost:7000"
max_retries = 3
backoff_base = "5ms"
`)

	_, err := LoadRouterCfg(path)
	require.NoError(t, err)

	cfg := RouterConfig()
	assert.Equal("localhost:7000", cfg.CoordinatorAddr)
	assert.Equal(3, cfg.MaxRetries)
	assert.Equal(5*time.Millisecond, cfg.BackoffBase)
	assert.Equal(DefaultBackoffMax, cfg.BackoffMax)
	assert.Equal(DefaultAttemptTimeout, cfg.AttemptTimeout)
	assert.Equal(DefaultScanBatchSize, cfg.ScanBatchSize)
	assert.Equal(DefaultMaxScanRestarts, cfg.MaxScanRestarts)
}

func TestLoadCoordinatorCfgJson(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "coordinator.json", `{"qdb_type": "etcd", "qdb_addr": "localhost:2379"}`)

	_, err := LoadCoordinatorCfg(path)
	require.NoError(t, err)

	cfg := CoordinatorConfig()
	assert.Equal("etcd", cfg.QdbType)
	assert.Equal("localhost:2379", cfg.QdbAddr)
	assert.Equal(DefaultCoordinatorPort, cfg.GrpcApiPort)
	assert.Equal(DefaultTransferBatchSize, cfg.TransferBatchSize)
}

func TestUnknownFormat(t *testing.T) {
	path := writeConfig(t, "server.ini", "server_id=srv1")

	_, err := LoadServerCfg(path)
	assert.Error(t, err)

	_, err = LoadServerCfg(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNegativeIntervalRejected(t *testing.T) {
	path := writeConfig(t, "server.yaml", `
server_id: srv1
sweeper_interval: -200ms
`)
	_, err := LoadServerCfg(path)
	assert.ErrorContains(t, err, "sweeper_interval")

	path = writeConfig(t, "router.toml", `backoff_max = "-1s"`)
	_, err = LoadRouterCfg(path)
	assert.ErrorContains(t, err, "backoff_max")
}

func TestRouterRetriesDisabled(t *testing.T) {
	cfg := Router{MaxRetries: -1}
	cfg.ApplyDefaults()
	cfg.ApplyDefaults()
	assert.Equal(t, uint64(0), cfg.Retries())

	cfg = Router{}
	cfg.ApplyDefaults()
	assert.Equal(t, uint64(DefaultMaxRetries), cfg.Retries())
}

func TestRouterApplyDefaultsKeepsExplicit(t *testing.T) {
	cfg := Router{MaxRetries: 1, MaxScanRestarts: -1, AttemptTimeout: time.Millisecond}
	cfg.ApplyDefaults()

	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, -1, cfg.MaxScanRestarts)
	assert.Equal(t, time.Millisecond, cfg.AttemptTimeout)
}
