package cmake

import (
	"context"
	"path/filepath"
)

// SessionOptions are the per-run options shared by every config.
type SessionOptions struct {
	BuildRoot string
	DefineVar string
	Generator string
	ExtraArgs []string
}

// Session binds a Tool to per-run options, giving each config its own
// build directory under the build root. It satisfies the runner's
// Configurer interface.
type Session struct {
	tool *Tool
	opts SessionOptions
}

// NewSession creates a Session.
func NewSession(tool *Tool, opts SessionOptions) *Session {
	return &Session{tool: tool, opts: opts}
}

// Configure runs the configuration step for a single config name.
func (s *Session) Configure(ctx context.Context, name string) (string, error) {
	return s.tool.Configure(ctx, ConfigureRequest{
		BuildDir:  filepath.Join(s.opts.BuildRoot, name),
		Define:    s.opts.DefineVar,
		Value:     name,
		Generator: s.opts.Generator,
		ExtraArgs: s.opts.ExtraArgs,
	})
}
