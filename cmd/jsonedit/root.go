package main

import (
	"fmt"
	"io"

	"jsonedit/internal/config"
	"jsonedit/internal/errors"
	"jsonedit/internal/log"
	"jsonedit/internal/output"
	"jsonedit/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// errAborted is returned when the user interrupts the editor.
var errAborted = errors.New("aborted")

// runProgram runs the editor until it quits. Tests replace it to drive the
// model without a terminal.
var runProgram = func(m *tui.Model, ui io.Writer) (*tui.Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(ui))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*tui.Model), nil
}

type rootOptions struct {
	cfgFile  string
	output   string
	indent   string
	compact  bool
	theme    string
	debug    bool
	logFile  string
	uiStderr bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "jsonedit",
		Short: "Build a flat JSON object one key-value pair at a time",
		Long: `jsonedit opens a small terminal form for composing a JSON object.

Press e to add a pair, type the key, Tab or Enter to move to the value,
Enter to commit it and Esc to throw it away. Press q and then y to quit
and print the object.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer closeLog()
			return runEditor(cmd, cfg, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/jsonedit/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the JSON object to this file instead of stdout")
	rootCmd.Flags().StringVar(&opts.indent, "indent", "", "Indent used for pretty output")
	rootCmd.Flags().BoolVarP(&opts.compact, "compact", "c", false, "Print the object on a single line")
	rootCmd.Flags().StringVar(&opts.theme, "theme", "", "Colour theme (default, ocean, monochrome)")
	rootCmd.Flags().BoolVar(&opts.uiStderr, "ui-stderr", true, "Draw the interface on stderr so stdout only carries JSON")

	rootCmd.AddCommand(NewConfigCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// loadConfig reads the config file named by --config or the default one.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	if opts.cfgFile != "" {
		return config.LoadConfigFile(opts.cfgFile)
	}
	return config.LoadConfig()
}

// setup loads the config, applies flag overrides and configures logging.
// The returned func closes the log file.
func setup(cmd *cobra.Command, opts *rootOptions) (*config.Config, func(), error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		if opts.cfgFile != "" {
			return nil, nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v. Using default settings.\n", err)
		cfg = config.New()
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = opts.output
	}
	if flags.Changed("indent") {
		cfg.Output.Indent = opts.indent
	}
	if opts.compact {
		cfg.Output.Indent = ""
	}
	if flags.Changed("theme") {
		cfg.ApplyTheme(opts.theme)
		// Keep the requested name so Validate rejects unknown themes
		cfg.Theme.Name = opts.theme
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	closeLog := func() {}
	logOpts := []log.Option{log.WithLevel(cfg.Log.Level)}
	if cfg.Log.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	if cfg.Log.File != "" {
		f, err := log.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, nil, errors.NewConfigError("cannot open log file", "log.file", errors.InvalidConfig, err)
		}
		logOpts = append(logOpts, log.WithOutput(f))
		closeLog = func() { f.Close() }
	}
	log.Configure(logOpts...)
	log.SetDebug(opts.debug)

	return cfg, closeLog, nil
}

func runEditor(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) error {
	ui := cmd.OutOrStdout()
	if opts.uiStderr {
		ui = cmd.ErrOrStderr()
	}

	final, err := runProgram(tui.New(cfg), ui)
	if err != nil {
		log.LogWithError(err).Error("editor failed")
		return errors.Wrap(err, "error running editor")
	}
	if final.Aborted() || !final.Done() {
		return errAborted
	}

	err = output.Emit(cmd.OutOrStdout(), final.Pairs(), output.Options{
		Path:   cfg.Output.Path,
		Indent: cfg.Output.Indent,
	})
	if err != nil {
		log.LogWithError(err).Error("emit failed")
		return err
	}
	return nil
}

// exitCode maps an error returned by the root command to a process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errAborted):
		return 130
	default:
		return 1
	}
}

// NewVersionCmd prints the version
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jsonedit version %s\n", version)
		},
	}
}
