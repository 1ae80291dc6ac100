package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"anmitsu/internal/domain"
	"anmitsu/internal/logger"
	"anmitsu/internal/paths"

	"github.com/avast/retry-go"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configFile = "config.yml"
	envPrefix  = "ANMITSU__"
)

type Config interface {
	Current() *domain.Config
	DynamicReload(log logger.Logger)
}

var _ Config = (*AppConfig)(nil)

// AppConfig ties the automation document to the file it was read from and
// the runtime settings stored next to it.
type AppConfig struct {
	settings *domain.Settings

	v      *viper.Viper
	m      *sync.RWMutex
	config *domain.Config
}

// New locates the config file, reads the runtime settings and parses the
// automation document. configPath may be a directory, a file, or empty to
// search the working directory and the user path.
func New(configPath string, version string) (*AppConfig, error) {
	c := &AppConfig{
		v: viper.New(),
		m: new(sync.RWMutex),
		settings: &domain.Settings{
			Version:    version,
			ConfigPath: configPath,
		},
	}
	c.defaults()

	if err := c.locate(configPath); err != nil {
		return nil, err
	}

	if err := c.v.ReadInConfig(); err != nil {
		// malformed YAML is reported by Parse so callers get a *ParseError
		var parseErr viper.ConfigParseError
		if !errors.As(err, &parseErr) || c.v.ConfigFileUsed() == "" {
			return nil, errors.Wrap(err, "could not read config file")
		}

		c.settings.ConfigFile = c.v.ConfigFileUsed()
		if _, err := c.readDocument(); err != nil {
			return nil, err
		}
		return nil, errors.Wrap(err, "could not read config file")
	}
	c.settings.ConfigFile = c.v.ConfigFileUsed()
	c.settings.ConfigPath = filepath.Dir(c.settings.ConfigFile)

	c.loadSettings()
	c.loadFromEnv()

	cfg, err := c.readDocument()
	if err != nil {
		return nil, err
	}
	c.config = cfg

	return c, nil
}

func (c *AppConfig) defaults() {
	c.v.SetDefault("logPath", "")
	c.v.SetDefault("logLevel", "DEBUG")
	c.v.SetDefault("logMaxSize", 50)
	c.v.SetDefault("logMaxBackups", 3)
}

func (c *AppConfig) locate(configPath string) error {
	c.v.SetConfigType("yaml")

	if configPath == "" {
		c.v.SetConfigName(configName)

		// Search config in directories
		c.v.AddConfigPath(".")
		c.v.AddConfigPath(paths.UserPath())
		return nil
	}

	configPath = filepath.Clean(configPath)

	info, err := os.Stat(configPath)
	if err == nil && !info.IsDir() {
		c.v.SetConfigFile(configPath)
		return nil
	}

	// a missing file is reported by ReadInConfig
	if ext := filepath.Ext(configPath); err != nil && (ext == ".yml" || ext == ".yaml") {
		c.v.SetConfigFile(configPath)
		return nil
	}

	// treat as directory, create it with a template if it is empty
	if _, err := WriteTemplate(configPath); err != nil {
		return err
	}

	c.v.SetConfigName(configName)
	c.v.AddConfigPath(configPath)

	return nil
}

func (c *AppConfig) loadSettings() {
	c.settings.LogPath = c.v.GetString("logPath")
	c.settings.LogLevel = c.v.GetString("logLevel")
	c.settings.LogMaxSize = c.v.GetInt("logMaxSize")
	c.settings.LogMaxBackups = c.v.GetInt("logMaxBackups")
}

func (c *AppConfig) loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}

		envPair := strings.SplitN(env, "=", 2)
		if len(envPair) != 2 || envPair[1] == "" {
			continue
		}

		switch envPair[0] {
		case envPrefix + "LOG_LEVEL":
			c.settings.LogLevel = envPair[1]
		case envPrefix + "LOG_PATH":
			c.settings.LogPath = envPair[1]
		case envPrefix + "LOG_MAX_SIZE":
			if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
				c.settings.LogMaxSize = int(i)
			}
		case envPrefix + "LOG_MAX_BACKUPS":
			if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
				c.settings.LogMaxBackups = int(i)
			}
		}
	}
}

func (c *AppConfig) readDocument() (*domain.Config, error) {
	data, err := os.ReadFile(c.settings.ConfigFile)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file: %s", c.settings.ConfigFile)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", c.settings.ConfigFile)
	}

	return cfg, nil
}

// Settings returns a copy of the runtime settings.
func (c *AppConfig) Settings() domain.Settings {
	c.m.RLock()
	defer c.m.RUnlock()

	return *c.settings
}

// Current returns the most recently loaded document.
func (c *AppConfig) Current() *domain.Config {
	c.m.RLock()
	defer c.m.RUnlock()

	return c.config
}

// reload re-reads the document. Editors often truncate before writing, so a
// failed parse is retried a few times before giving up. On failure the
// previous document stays active.
func (c *AppConfig) reload() error {
	var cfg *domain.Config

	err := retry.Do(
		func() error {
			var err error
			cfg, err = c.readDocument()
			return err
		},
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return err
	}

	c.m.Lock()
	c.config = cfg
	c.m.Unlock()

	return nil
}

func (c *AppConfig) DynamicReload(log logger.Logger) {
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if err := c.v.ReadInConfig(); err != nil {
			log.Error().Err(err).Msg("could not read changed config file")
		} else {
			logLevel := c.v.GetString("logLevel")
			c.m.Lock()
			c.settings.LogLevel = logLevel
			c.settings.LogPath = c.v.GetString("logPath")
			c.m.Unlock()
			log.SetLogLevel(logLevel)
		}

		if err := c.reload(); err != nil {
			log.Error().Err(err).Msgf("config file changed but could not be loaded, keeping previous config")
			return
		}

		log.Debug().Str("file", e.Name).Msg("config file reloaded!")
	})

	c.v.WatchConfig()
}

// WriteTemplate writes the commented template into dir unless a config file
// already exists there. It returns the path of the config file.
func WriteTemplate(dir string) (string, error) {
	cfgPath := filepath.Join(dir, configFile)

	for _, ext := range []string{".yml", ".yaml"} {
		existing := filepath.Join(dir, configName+ext)
		if _, err := os.Stat(existing); err == nil {
			return existing, nil
		}
	}

	// check if configPath exists, if not create it
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.Wrapf(err, "could not create config directory: %s", dir)
	}

	f, err := os.Create(cfgPath)
	if err != nil {
		return "", fmt.Errorf("could not create config file: %s: %w", cfgPath, err)
	}
	defer f.Close()

	if _, err = f.WriteString(configTemplate); err != nil {
		return "", fmt.Errorf("could not write config file: %s: %w", cfgPath, err)
	}

	return cfgPath, f.Sync()
}
