// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for caesarcipher using the
// Cobra library. It defines the root command, its flags, the version, config
// and tui subcommands, and the entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/caesarcipher/buildvars"
	"github.com/toeirei/caesarcipher/core/cipher"
	"github.com/toeirei/caesarcipher/internal/config"
	"github.com/toeirei/caesarcipher/internal/i18n"
	"github.com/toeirei/caesarcipher/internal/logging"
	"github.com/toeirei/caesarcipher/internal/tui"
)

const modulePath = "github.com/toeirei/caesarcipher"

var version = buildvars.VersionOrDefault("dev")  // this will be set by the linker
var gitCommit = buildvars.CommitOrDefault("dev") // set at build time with the short commit SHA
var buildDate = buildvars.Date                   // set at build time (RFC3339)

// rootOptions holds the flag values of one root command instance, so fresh
// commands built in tests never share state.
type rootOptions struct {
	encode  bool
	decode  bool
	crack   bool
	offset  int
	file    string
	output  string
	report  bool
	copy    bool
	cfgFile string

	settings config.Config
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "caesarcipher [message]",
		Short:   i18n.T("cli.short"),
		Long:    i18n.T("cli.long") + "\n" + i18n.T("cli.epilog"),
		Args:    cobra.MaximumNArgs(1),
		Version: compositeVersion(nil),
		// Errors are logged once by the caller of Execute.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, o.cfgFile)
			if err != nil {
				return err
			}
			o.settings = s
			return nil
		},
		RunE: o.run,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().BoolVarP(&o.encode, "encode", "e", false, i18n.T("cli.flag_encode"))
	cmd.Flags().BoolVarP(&o.decode, "decode", "d", false, i18n.T("cli.flag_decode"))
	cmd.Flags().BoolVarP(&o.crack, "crack", "c", false, i18n.T("cli.flag_crack"))
	cmd.Flags().IntVarP(&o.offset, "offset", "o", 0, i18n.T("cli.flag_offset"))
	cmd.Flags().StringVarP(&o.file, "file", "f", "", i18n.T("cli.flag_file"))
	cmd.Flags().StringVar(&o.output, "output", "", i18n.T("cli.flag_output"))
	cmd.Flags().BoolVar(&o.report, "report", false, i18n.T("cli.flag_report"))
	cmd.Flags().BoolVar(&o.copy, "copy", false, i18n.T("cli.flag_copy"))
	cmd.Flags().BoolP("version", "V", false, i18n.T("cli.flag_version"))

	// Settings flags are persistent so the tui and config subcommands see
	// them too. Their values are read back through the config layer.
	cmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", i18n.T("cli.flag_config"))
	cmd.PersistentFlags().StringP("alphabet", "a", "", i18n.T("cli.flag_alphabet"))
	cmd.PersistentFlags().BoolP("verbose", "v", false, i18n.T("cli.flag_verbose"))
	cmd.PersistentFlags().String("language", "en", i18n.T("cli.flag_language"))
	cmd.PersistentFlags().String("format", "text", i18n.T("cli.flag_format"))
	cmd.PersistentFlags().String("input-format", "text", i18n.T("cli.flag_input_format"))
	cmd.PersistentFlags().Bool("uppercase", false, i18n.T("cli.flag_uppercase"))
	cmd.PersistentFlags().Bool("exhaustive", false, i18n.T("cli.flag_exhaustive"))

	cmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(o),
		newTUICmd(o),
	)

	return cmd
}

// loadSettings resolves the configuration for this invocation and applies
// its process-wide parts: language and log verbosity.
func loadSettings(cmd *cobra.Command, cfgFile string) (config.Config, error) {
	var path *string
	if cfgFile != "" {
		path = &cfgFile
	}
	s, used, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return s, &userError{msg: i18n.T("config.error_load", err), err: err}
	}

	i18n.Init(s.Language)
	logging.SetVerbose(s.Verbose)
	if used != "" {
		logging.Debugf("Using config file: %s", used)
	}

	if err := validateFormat(s.Format); err != nil {
		return s, err
	}
	if err := validateFormat(s.InputFormat); err != nil {
		return s, err
	}
	return s, nil
}

// cipherOptions maps settings onto engine options.
func cipherOptions(s config.Config) []cipher.Option {
	opts := []cipher.Option{cipher.WithAlphabet(s.Alphabet)}
	if s.Uppercase {
		opts = append(opts, cipher.WithCaseMode(cipher.CaseUpper))
	}
	if s.Exhaustive {
		opts = append(opts, cipher.WithExhaustive())
	}
	return opts
}

// userError carries a localised message for the user while still matching
// the engine's sentinel error with errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func newUserError(messageID string, err error) error {
	return &userError{msg: i18n.T(messageID), err: err}
}

// IsUsageError reports whether err comes from an invalid combination of
// flags rather than from processing the message.
func IsUsageError(err error) bool {
	return errors.Is(err, cipher.ErrNoSelection) ||
		errors.Is(err, cipher.ErrMissingOffset) ||
		errors.Is(err, cipher.ErrMutualExclusion)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func newConfigCmd(o *rootOptions) *cobra.Command {
	var system bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("config.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&o.settings, system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&system, "system", false, i18n.T("config.flag_system"))
	return cmd
}

func newTUICmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: i18n.T("tui.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Options{
				Alphabet:   o.settings.Alphabet,
				Uppercase:  o.settings.Uppercase,
				Exhaustive: o.settings.Exhaustive,
			})
		},
	}
}

func compositeVersion(info *debug.BuildInfo) string {
	v, c, d := resolveBuildVersion(info)
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
