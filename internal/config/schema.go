package config

// Config holds kgplan configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server   ServerCfg   `mapstructure:"server" yaml:"server"`
	Database DatabaseCfg `mapstructure:"database" yaml:"database"`
	Template TemplateCfg `mapstructure:"template" yaml:"template"`
	Output   OutputCfg   `mapstructure:"output" yaml:"output"`
	AI       AICfg       `mapstructure:"ai" yaml:"ai"`
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// DatabaseCfg configures the plan database.
type DatabaseCfg struct {
	Path string `mapstructure:"path" yaml:"path"` // empty means {home}/plans.db
}

// TemplateCfg configures the docx template used for generation.
type TemplateCfg struct {
	Path string `mapstructure:"path" yaml:"path"` // empty means {home}/templates/plan.docx
}

// OutputCfg configures where generated documents land.
type OutputCfg struct {
	Dir string `mapstructure:"dir" yaml:"dir"` // empty means {home}/output
}

// AICfg configures the draft-splitting model.
type AICfg struct {
	APIKey       string `mapstructure:"api_key" yaml:"api_key"` // supports ${ENV_VAR} syntax
	BaseURL      string `mapstructure:"base_url" yaml:"base_url"`
	Model        string `mapstructure:"model" yaml:"model"`
	SystemPrompt string `mapstructure:"system_prompt" yaml:"system_prompt"` // empty uses the built-in prompt
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: 8321,
		},
		AI: AICfg{
			APIKey: "${OPENAI_API_KEY}",
			Model:  "gpt-4o-mini",
		},
	}
}

// ListenAddr returns the host:port the server binds.
func (c *Config) ListenAddr() string {
	host := c.Server.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := c.Server.Port
	if port == 0 {
		port = 8321
	}
	return hostPort(host, port)
}
