package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"novelarr/internal/domain"
	"novelarr/internal/logger"
	"novelarr/internal/templater"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "NOVELARR__"

var configTemplate = `# config.yaml

# Data Directory
# Where the library (library.data) and settings (settings.data) are stored.
# If empty, a "data" folder next to this config file is used.
#
# Default: ""
#
dataDirectory: ""

# Export Location
# Where exported EPUB and PDF files are written.
# If empty, an "exports" folder inside the data directory is used.
#
# Default: ""
#
exportLocation: ""

# Naming Template
# Used for chapter headings in exports
# The default will result something like this: Novel Ch. 001 - Chapter Title
#
# Default: {novel:<.>} Ch. {num:3}{title: - <.>}
#
namingTemplate: "{novel:<.>} Ch. {num:3}{title: - <.>}"

# Check interval in minutes for the monitor command
#
# Default: 60
#
checkInterval: 60

# Download the content of new chapters found by the monitor command
#
# Default: false
#
autoDownload: false

# Request timeout in seconds
#
# Default: 120
#
requestTimeout: 120

# Route requests through a transport that mimics a browser TLS handshake
#
# Default: false
#
cloudflareBypass: false

# novelarr logs file
# If not defined, logs to stderr
# Make sure to use forward slashes and include the filename with extension. e.g. "logs/novelarr.log", "C:/novelarr/logs/novelarr.log"
#
# Optional
#
#logPath: ""

# Log level
#
# Default: "INFO"
#
# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"
#
logLevel: "INFO"

# Log Max Size
#
# Default: 50
#
# Max log size in megabytes
#
#logMaxSize: 50

# Log Max Backups
#
# Default: 3
#
# Max amount of old log files
#
#logMaxBackups: 3
`

func (c *AppConfig) writeConfig(configPath string, configFile string) error {
	cfgPath := filepath.Join(configPath, configFile)

	// check if configPath exists, if not create it
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		err := os.MkdirAll(configPath, os.ModePerm)
		if err != nil {
			log.Println(err)
			return err
		}
	}

	// check if config exists, if not create it
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {

		f, err := os.Create(cfgPath)
		if err != nil { // perm 0666
			// handle failed create
			log.Printf("error creating file: %q", err)
			return err
		}
		defer f.Close()

		if _, err = f.WriteString(configTemplate); err != nil {
			log.Printf("error writing contents to file: %v %q", configPath, err)
			return err
		}

		return f.Sync()
	}

	return nil
}

type Config interface {
	UpdateConfig() error
	DynamicReload(log logger.Logger)
}

type AppConfig struct {
	Config *domain.Config
	m      *sync.Mutex
}

func New(configPath string, version string) *AppConfig {
	c := &AppConfig{
		m: new(sync.Mutex),
	}
	c.defaults()
	c.Config = &domain.Config{
		Version:    version,
		ConfigPath: configPath,
	}

	c.load(configPath)
	c.loadFromEnv()
	c.resolveDirectories()

	return c
}

func (c *AppConfig) defaults() {
	viper.SetDefault("dataDirectory", "")
	viper.SetDefault("exportLocation", "")
	viper.SetDefault("namingTemplate", templater.DefaultTemplate)
	viper.SetDefault("checkInterval", 60)
	viper.SetDefault("autoDownload", false)
	viper.SetDefault("requestTimeout", 120)
	viper.SetDefault("cloudflareBypass", false)
	viper.SetDefault("logPath", "")
	viper.SetDefault("logLevel", "INFO")
	viper.SetDefault("logMaxSize", 50)
	viper.SetDefault("logMaxBackups", 3)
}

func (c *AppConfig) loadFromEnv() {
	envs := os.Environ()
	for _, env := range envs {
		if strings.HasPrefix(env, envPrefix) {
			envPair := strings.SplitN(env, "=", 2)

			if envPair[1] != "" {
				switch envPair[0] {
				case envPrefix + "DATA_DIRECTORY":
					c.Config.DataDirectory = envPair[1]
				case envPrefix + "EXPORT_LOCATION":
					c.Config.ExportLocation = envPair[1]
				case envPrefix + "NAMING_TEMPLATE":
					c.Config.NamingTemplate = envPair[1]
				case envPrefix + "CHECK_INTERVAL":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.CheckInterval = int(i)
					}
				case envPrefix + "AUTO_DOWNLOAD":
					if b, err := strconv.ParseBool(envPair[1]); err == nil {
						c.Config.AutoDownload = b
					}
				case envPrefix + "REQUEST_TIMEOUT":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.RequestTimeout = int(i)
					}
				case envPrefix + "CLOUDFLARE_BYPASS":
					if b, err := strconv.ParseBool(envPair[1]); err == nil {
						c.Config.CloudflareBypass = b
					}
				case envPrefix + "LOG_LEVEL":
					c.Config.LogLevel = envPair[1]
				case envPrefix + "LOG_PATH":
					c.Config.LogPath = envPair[1]
				case envPrefix + "LOG_MAX_SIZE":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.LogMaxSize = int(i)
					}
				case envPrefix + "LOG_MAX_BACKUPS":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.LogMaxBackups = int(i)
					}
				}
			}
		}
	}
}

func (c *AppConfig) load(configPath string) {
	viper.SetConfigType("yaml")

	if configPath != "" {
		// clean trailing slash from configPath
		configPath = path.Clean(configPath)

		// check if path and file exists
		// if not, create path and file
		if err := c.writeConfig(configPath, "config.yaml"); err != nil {
			log.Printf("write error: %q", err)
		}

		viper.SetConfigFile(path.Join(configPath, "config.yaml"))
	} else {
		viper.SetConfigName("config")

		// Search config in directories
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/novelarr")
		viper.AddConfigPath("$HOME/.novelarr")
	}

	// read config
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config read error: %q", err)
	}

	if err := viper.Unmarshal(c.Config); err != nil {
		log.Fatalf("Could not unmarshal config file: %v: err %q", viper.ConfigFileUsed(), err)
	}
}

// resolveDirectories fills in the data and export directories relative to the config.
func (c *AppConfig) resolveDirectories() {
	if c.Config.DataDirectory == "" {
		base := c.Config.ConfigPath
		if used := viper.ConfigFileUsed(); base == "" && used != "" {
			base = filepath.Dir(used)
		}
		if base == "" {
			if home, err := os.UserHomeDir(); err == nil {
				base = filepath.Join(home, ".novelarr")
			}
		}

		c.Config.DataDirectory = filepath.Join(base, "data")
	}

	if c.Config.ExportLocation == "" {
		c.Config.ExportLocation = filepath.Join(c.Config.DataDirectory, "exports")
	}
}

func (c *AppConfig) DynamicReload(log logger.Logger) {
	viper.WatchConfig()

	viper.OnConfigChange(func(_ fsnotify.Event) {
		c.m.Lock()
		defer c.m.Unlock()

		logLevel := viper.GetString("logLevel")
		c.Config.LogLevel = logLevel
		log.SetLogLevel(c.Config.LogLevel)

		logPath := viper.GetString("logPath")
		c.Config.LogPath = logPath

		checkInterval := viper.GetInt("checkInterval")
		if checkInterval > 0 {
			c.Config.CheckInterval = checkInterval
		}
		c.Config.AutoDownload = viper.GetBool("autoDownload")

		log.Debug().Msg("config file reloaded!")
	})
}

// Snapshot returns a copy of the current config, safe to read while reloads happen.
func (c *AppConfig) Snapshot() domain.Config {
	c.m.Lock()
	defer c.m.Unlock()

	return *c.Config
}

func (c *AppConfig) UpdateConfig() error {
	filePath := path.Join(c.Config.ConfigPath, "config.yaml")

	f, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "could not read config file: %s", filePath)
	}

	lines := strings.Split(string(f), "\n")
	lines = c.processLines(lines)

	output := strings.Join(lines, "\n")
	if err := os.WriteFile(filePath, []byte(output), 0o644); err != nil {
		return errors.Wrapf(err, "could not write config file: %s", filePath)
	}

	return nil
}

func (c *AppConfig) processLines(lines []string) []string {
	// keep track of not found values to append at bottom
	var (
		foundLineLogLevel = false
		foundLineLogPath  = false
	)

	for i, line := range lines {
		if !foundLineLogLevel && strings.Contains(line, "logLevel:") {
			lines[i] = fmt.Sprintf(`logLevel: "%s"`, c.Config.LogLevel)
			foundLineLogLevel = true
		}
		if !foundLineLogPath && strings.Contains(line, "logPath:") {
			if c.Config.LogPath == "" {
				lines[i] = `#logPath: ""`
			} else {
				lines[i] = fmt.Sprintf(`logPath: "%s"`, c.Config.LogPath)
			}
			foundLineLogPath = true
		}
	}

	if !foundLineLogLevel {
		lines = append(lines, "# Log level")
		lines = append(lines, "#")
		lines = append(lines, `# Default: "INFO"`)
		lines = append(lines, "#")
		lines = append(lines, `# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"`)
		lines = append(lines, "#")
		lines = append(lines, fmt.Sprintf(`logLevel: "%s"`, c.Config.LogLevel))
	}

	if !foundLineLogPath {
		lines = append(lines, "# Log Path")
		lines = append(lines, "#")
		lines = append(lines, "# Optional")
		lines = append(lines, "#")
		if c.Config.LogPath == "" {
			lines = append(lines, `#logPath: ""`)
		} else {
			lines = append(lines, fmt.Sprintf(`logPath: "%s"`, c.Config.LogPath))
		}
	}

	return lines
}
