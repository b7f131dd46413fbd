package config

// Config is the top-level archfolio configuration, corresponding to archfolio.yml.
type Config struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port" koanf:"port"`
	// AssetsDir holds diagram exports, fallback images and resume.pdf.
	AssetsDir string `yaml:"assets_dir" koanf:"assets_dir"`
	// ContentFile is the YAML file describing the case studies. When it
	// does not exist the built-in content is served.
	ContentFile string `yaml:"content_file" koanf:"content_file"`
	// AccessCodeHash is a bcrypt hash of the access code. Preferred over
	// AccessCode when both are set. Generate one with `archfolio hash`.
	AccessCodeHash string `yaml:"access_code_hash,omitempty" koanf:"access_code_hash"`
	// AccessCode is the plaintext access code. Hash it instead if you can.
	AccessCode string `yaml:"access_code,omitempty" koanf:"access_code"`
	// AllowAllOrigins relaxes CORS to * (dev mode).
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// HasCredential reports whether any access code is configured at all.
// When false, the gate rejects every code (fail closed).
func (c *Config) HasCredential() bool {
	return c.AccessCodeHash != "" || c.AccessCode != ""
}
