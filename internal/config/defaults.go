package config

// DefaultConfig returns configuration with sensible defaults, used when
// no config file exists or when fields are missing from it.
func DefaultConfig() *Config {
	return &Config{
		CV: CVConfig{
			Path:   "cv/psi-ms.obo.gz",
			Prefix: "MS",
		},
		Cache: CacheConfig{
			Disabled: false,
		},
	}
}

// Merge merges loaded config with defaults. Values from the loaded
// config take precedence.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}
	result.CV = mergeCVConfig(loaded.CV, defaults.CV)
	// Disabled defaults to false, so the loaded value stands as-is.
	result.Cache = loaded.Cache
	return result
}

func mergeCVConfig(loaded, defaults CVConfig) CVConfig {
	result := CVConfig{}

	if loaded.Path != "" {
		result.Path = loaded.Path
	} else {
		result.Path = defaults.Path
	}

	if loaded.Prefix != "" {
		result.Prefix = loaded.Prefix
	} else {
		result.Prefix = defaults.Prefix
	}

	return result
}
