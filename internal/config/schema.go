package config

// SettingsFileName is the optional per-project settings file, looked up in
// the source directory.
const SettingsFileName = ".cmakecheck.json"

// Settings represents the .cmakecheck.json settings file. Every field is
// optional; command-line flags override anything set here.
type Settings struct {
	Schema string `json:"$schema,omitempty"`

	// ConfigRoot is the legacy config directory, relative to the source tree
	// unless absolute.
	ConfigRoot string `json:"configRoot,omitempty"`

	// BuildRoot is the directory used to store per-config CMake caches.
	BuildRoot string `json:"buildRoot,omitempty"`

	// Generator forces a CMake generator (e.g. "Ninja").
	Generator string `json:"generator,omitempty"`

	// DefineVar is the cache variable that receives the config name.
	DefineVar string `json:"defineVar,omitempty"`

	// CmakeArgs are extra arguments appended to every cmake invocation.
	CmakeArgs []string `json:"cmakeArgs,omitempty"`

	// ToolHints maps generator names to the companion executable they need
	// (e.g. "Ninja" -> "ninja"). Merged over the built-in hints.
	ToolHints map[string]string `json:"toolHints,omitempty"`
}
