package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:        8080,
		AssetsDir:   "assets",
		ContentFile: "content.yml",
	}
}
