package domain

type Config struct {
	Version          string
	ConfigPath       string
	DataDirectory    string `yaml:"dataDirectory"`
	ExportLocation   string `yaml:"exportLocation"`
	NamingTemplate   string `yaml:"namingTemplate"`
	CheckInterval    int    `yaml:"checkInterval"`
	AutoDownload     bool   `yaml:"autoDownload"`
	RequestTimeout   int    `yaml:"requestTimeout"` // in seconds
	CloudflareBypass bool   `yaml:"cloudflareBypass"`
	LogPath          string `yaml:"logPath"`
	LogLevel         string `yaml:"logLevel"`
	LogMaxSize       int    `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups    int    `yaml:"logMaxBackups"`
}
