package config

// Default configuration values.
const (
	DefaultConfigRoot = "config"
	DefaultBuildRoot  = "cmake-config-check"
	DefaultDefineVar  = "LEGACY_CONFIG"
)

// defaultToolHints maps generators to the build tool they require. Only
// generators whose companion executable is commonly missing are listed;
// everything else is left to cmake itself to diagnose.
func defaultToolHints() map[string]string {
	return map[string]string{
		"Ninja":          "ninja",
		"Unix Makefiles": "make",
	}
}

// applyDefaults fills in default values for unset settings fields.
func applyDefaults(cfg *Settings) {
	if cfg.ConfigRoot == "" {
		cfg.ConfigRoot = DefaultConfigRoot
	}
	if cfg.BuildRoot == "" {
		cfg.BuildRoot = DefaultBuildRoot
	}
	if cfg.DefineVar == "" {
		cfg.DefineVar = DefaultDefineVar
	}
	cfg.ToolHints = mergeToolHints(cfg.ToolHints)
}

// mergeToolHints layers user-provided hints over the built-in ones.
// User entries win on conflict.
func mergeToolHints(user map[string]string) map[string]string {
	merged := defaultToolHints()
	for k, v := range user {
		merged[k] = v
	}
	return merged
}

// Default returns the settings used when no settings file exists.
func Default() *Settings {
	cfg := &Settings{}
	applyDefaults(cfg)
	return cfg
}
