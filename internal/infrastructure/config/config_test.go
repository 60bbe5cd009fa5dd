package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
  mode: release
database:
  host: db.internal
  port: 3307
  user: bookrec
  password: secret
  dbname: bookrec
  charset: utf8mb4
  parse_time: true
  loc: Asia/Shanghai
log:
  level: debug
  format: json
tracing:
  enabled: true
  service_name: bookrec-api
  endpoint: otel:4317
  sample_ratio: 0.1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Tracing.Enabled)
	assert.InDelta(t, 0.1, cfg.Tracing.SampleRatio, 1e-9)

	// 文件未配置的key使用默认值
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("BOOKREC_DATABASE_PASSWORD", "from-env")
	t.Setenv("BOOKREC_SERVER_PORT", "7070")

	cfg, err := LoadFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("端口越界", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "server:\n  port: 70000\n"))
		assert.Error(t, err)
	})

	t.Run("未知日志格式", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "log:\n  format: xml\n"))
		assert.Error(t, err)
	})

	t.Run("生产环境开启swagger", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "server:\n  mode: release\nswagger:\n  enabled: true\n"))
		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "127.0.0.1", Port: 3306, User: "root", Password: "pw",
		DBName: "bookrec", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t,
		"root:pw@tcp(127.0.0.1:3306)/bookrec?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai",
		d.DSN())
}

func TestLoad_ConfigEnv(t *testing.T) {
	t.Setenv("BOOKREC_CONFIG", writeConfig(t, sampleYAML))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bookrec-api", cfg.Tracing.ServiceName)
}
