// Package cli provides command-line interface functionality for cmakecheck.
package cli

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/buildcheck/cmakecheck/internal/errors"
	"github.com/buildcheck/cmakecheck/internal/output"
	"github.com/buildcheck/cmakecheck/internal/version"
)

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment width for flag descriptions.
const helpFlagWidth = 22

// wantsHelp returns true if args contain -h or --help before any -- separator.
// Arguments after -- are treated as config names, so help flags there are ignored.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// wantsVersion returns true if args contain --version before any -- separator.
func wantsVersion(args []string) bool {
	for _, arg := range args {
		if arg == "--version" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if wantsHelp(args) {
		printUsage()
		return errors.ExitSuccess
	}
	if wantsVersion(args) {
		out.Println("%s", version.String())
		return errors.ExitSuccess
	}

	opts, err := parseArgs(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		out.Errorln("run 'cmakecheck --help' for usage")
		return errors.ExitFailure
	}

	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)

	return runCheck(context.Background(), opts)
}

// Options holds parsed command-line options.
type Options struct {
	SourceDir  string   // CMake source tree (default: current directory)
	ConfigRoot string   // Legacy config directory (default: <source-dir>/config)
	BuildRoot  string   // Per-config cache directory
	Generator  string   // Forced CMake generator
	DefineVar  string   // Cache variable receiving the config name
	Report     string   // Optional YAML report path
	Clean      bool     // Wipe the build root before running
	Quiet      bool     // Minimal output
	Verbose    bool     // Echo cmake command lines
	Configs    []string // Explicit config identifiers
}

// parseArgs manually parses command-line arguments.
//
// Manual parsing is used instead of the stdlib flag package because flags
// may appear anywhere relative to the positional config names, and names
// after -- must be accepted verbatim even when they start with a dash.
func parseArgs(args []string) (*Options, error) {
	opts := &Options{SourceDir: "."}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--clean":
			opts.Clean = true
			i++
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--":
			// Everything after -- is a config name
			opts.Configs = append(opts.Configs, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-"):
			name, value, consumed, err := parseValueFlag(args, i)
			if err != nil {
				return nil, err
			}
			switch name {
			case "--source-dir":
				opts.SourceDir = value
			case "--config-root":
				opts.ConfigRoot = value
			case "--build-root":
				opts.BuildRoot = value
			case "--generator":
				opts.Generator = value
			case "--define":
				opts.DefineVar = value
			case "--report":
				opts.Report = value
			default:
				return nil, fmt.Errorf("unknown flag %q", arg)
			}
			i += consumed
		default:
			opts.Configs = append(opts.Configs, arg)
			i++
		}
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// parseValueFlag handles both "--flag value" and "--flag=value" forms.
// Returns the flag name, its value, and the number of arguments consumed.
func parseValueFlag(args []string, i int) (name, value string, consumed int, err error) {
	arg := args[i]

	if eq := strings.Index(arg, "="); eq != -1 {
		name, value = arg[:eq], arg[eq+1:]
		if value == "" {
			return "", "", 0, fmt.Errorf("%s requires a value", name)
		}
		return name, value, 1, nil
	}

	if i+1 >= len(args) {
		return "", "", 0, fmt.Errorf("%s requires a value", arg)
	}
	return arg, args[i+1], 2, nil
}

// validateOptions checks that parsed options are consistent.
func validateOptions(opts *Options) error {
	if opts.Quiet && opts.Verbose {
		return fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

func printUsage() {
	out.HelpTitle("cmakecheck - verify legacy build configs against CMake")

	out.HelpSection("Usage:")
	out.HelpUsage("cmakecheck [flags] [configs...]")

	out.HelpSection("Arguments:")
	out.HelpFlag("configs", "Specific configuration files to test (defaults to every file in the config root)", helpFlagWidth)

	out.HelpSection("Flags:")
	out.HelpFlag("--source-dir <path>", "Path to the CMake source tree (default: current directory)", helpFlagWidth)
	out.HelpFlag("--config-root <path>", "Legacy config directory (default: <source-dir>/config)", helpFlagWidth)
	out.HelpFlag("--build-root <path>", "Directory for per-config CMake caches (default: cmake-config-check)", helpFlagWidth)
	out.HelpFlag("--generator <name>", "Force a CMake generator (e.g. Ninja)", helpFlagWidth)
	out.HelpFlag("--define <name>", "Cache variable that receives the config name", helpFlagWidth)
	out.HelpFlag("--report <path>", "Write a YAML run report", helpFlagWidth)
	out.HelpFlag("--clean", "Delete the build root before running", helpFlagWidth)
	out.HelpFlag("-q, --quiet", "Minimal output (errors and summary only)", helpFlagWidth)
	out.HelpFlag("-v, --verbose", "Echo the full cmake command line per config", helpFlagWidth)
	out.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	out.HelpFlag("--version", "Show version", helpFlagWidth)

	out.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	examples := []struct {
		invocation string
		verb       string
		detail     string
	}{
		{"cmakecheck", "check", "every config in <source-dir>/config"},
		{"cmakecheck POSIX_X86 LINUX_ARM", "check", "two specific configs"},
		{"cmakecheck --generator Ninja --clean", "rerun", "from a wiped build root with Ninja"},
	}
	for _, ex := range examples {
		out.HelpExample(ex.invocation, fmt.Sprintf("%s %s", titleCase.String(ex.verb), ex.detail))
	}
	out.Println("")
}
