package config_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/config"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/testutils"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal("data", cfg.DataDir)
	s.Equal("info", cfg.LogLevel)
	s.Equal(0, cfg.Workers)
	s.False(cfg.RegenerateTooltips)
	s.Empty(cfg.Redis.Addr)
	s.Equal(2*time.Second, cfg.Redis.DialTimeout)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoadOverridesDefaults() {
	path := testutils.WriteFile(s.T(), s.dir, "rpg-content.yaml", `
data_dir: game/data
workers: 4
log_level: DEBUG
regenerate_tooltips: true
redis:
  addr: localhost:6379
  db: 2
  dial_timeout: 500ms
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal("game/data", cfg.DataDir)
	s.Equal(4, cfg.Workers)
	s.True(cfg.RegenerateTooltips)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal(500*time.Millisecond, cfg.Redis.DialTimeout)
	s.Equal(slog.LevelDebug, cfg.Level())
}

func (s *ConfigTestSuite) TestLoadEmptyFileKeepsDefaults() {
	path := testutils.WriteFile(s.T(), s.dir, "empty.yaml", "")

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	testCases := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{
			name:     "unknown key",
			content:  "data_dirr: data\n",
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "bad yaml",
			content:  "workers: [\n",
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "negative workers",
			content:  "workers: -1\n",
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "unknown log level",
			content:  "log_level: loud\n",
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "blank data dir",
			content:  "data_dir: \"\"\n",
			wantCode: errors.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			path := testutils.WriteFile(s.T(), s.dir, "bad.yaml", tc.content)

			_, err := config.Load(path)
			s.Require().Error(err)
			s.Equal(tc.wantCode, errors.GetCode(err))
		})
	}
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := config.Load(filepath.Join(s.dir, "missing.yaml"))
	s.True(errors.IsNotFound(err))
}

func (s *ConfigTestSuite) TestLevel() {
	s.Equal(slog.LevelWarn, (&config.Config{LogLevel: "warn"}).Level())
	s.Equal(slog.LevelInfo, (&config.Config{LogLevel: "nope"}).Level())
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
