package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/altinukshini/typeahead-tui/internal/config"
	"github.com/altinukshini/typeahead-tui/internal/logger"
	"github.com/altinukshini/typeahead-tui/internal/search"
	"github.com/altinukshini/typeahead-tui/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	candidates string
	mode       string
	maxResults int
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "typeahead",
		Short:         "Search a list of candidates as you type",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, f)
		},
	}
	root.SetVersionTemplate("typeahead {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default is the user config dir)")
	pf.StringVar(&f.candidates, "candidates", "", "candidates file (.txt, .yaml or .toml)")
	pf.StringVar(&f.mode, "mode", "", "match mode: "+modeList())
	pf.IntVar(&f.maxResults, "max-results", 0, "maximum suggestions shown (1-10)")
	pf.StringVar(&f.logFile, "log-file", "", "write debug logs to this file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newMatchCmd(f), newConfigCmd(f))
	return root
}

func newMatchCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "match QUERY",
		Short: "Print the suggestions for QUERY and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			matcher, err := buildMatcher(cfg)
			if err != nil {
				return err
			}
			for _, r := range matcher.Match(args[0]) {
				cmd.Println(r)
			}
			return nil
		},
	}
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			cmd.Print(string(data))
			return nil
		},
	}
}

func runTUI(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	lg, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	matcher, err := buildMatcher(cfg)
	if err != nil {
		return err
	}
	lg.Info("starting", "version", version, "mode", matcher.Mode(), "candidates", len(matcher.Candidates()))

	app := tui.NewApp(cfg, matcher, logger.TransitionLogger(lg))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		lg.Error("program exited", "err", err)
		return err
	}
	return nil
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	path, required := f.configPath, true
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path, required = p, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	if fl.Changed("candidates") {
		cfg.CandidatesFile = f.candidates
	}
	if fl.Changed("mode") {
		cfg.MatchMode = f.mode
	}
	if fl.Changed("max-results") {
		cfg.MaxResults = f.maxResults
	}
	if fl.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	return cfg, cfg.Validate()
}

func modeList() string {
	names := make([]string, 0, len(search.Modes()))
	for _, m := range search.Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func buildMatcher(cfg config.Config) (*search.Matcher, error) {
	candidates, err := cfg.ResolveCandidates()
	if err != nil {
		return nil, err
	}
	return search.New(candidates, search.Options{
		Mode:       cfg.Mode(),
		MaxResults: cfg.MaxResults,
	})
}

// The TUI owns the terminal, so logs go to a file or nowhere.
func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logger.Discard(), func() {}, nil
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	file, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger.New(file, "typeahead", level), func() { _ = file.Close() }, nil
}
