// Package cmd contains all CLI commands for katsuyou.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/katsuyou/internal/config"
	"github.com/f3rmion/katsuyou/internal/conjugate"
	"github.com/f3rmion/katsuyou/internal/history"
	"github.com/f3rmion/katsuyou/internal/lexicon"
	"github.com/f3rmion/katsuyou/internal/logging"
	"github.com/f3rmion/katsuyou/internal/reading"
	"github.com/f3rmion/katsuyou/internal/share"
	"github.com/f3rmion/katsuyou/internal/tui"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "katsuyou [verb]",
	Short: "Japanese verb conjugation tables",
	Long: `katsuyou classifies a Japanese verb in dictionary form and prints
its conjugation table.

Verbs can be written in kanji, hiragana or katakana:
  食べる, かく, 勉強する, 持って来る

Each verb is classified as godan, ichidan or irregular, then every
form is generated: te-form, polite, negative, past, potential, passive,
causative, conditional, volitional, imperative and more.

Running 'katsuyou' without arguments launches the interactive TUI.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/katsuyou)")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging on stderr")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in the config dir and ENV variables if set.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	// KATSUYOU_LOG_LEVEL, KATSUYOU_HISTORY_ENABLED, ...
	viper.SetEnvPrefix("KATSUYOU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// app bundles what the commands share.
type app struct {
	configDir string
	config    *config.Config
	logger    *slog.Logger
	lexicon   *lexicon.Lexicon
	tokenizer *reading.Tokenizer
	engine    *conjugate.Engine
	history   *history.Store
}

func (a *app) Close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.logger.Warn("closing history", "error", err)
		}
	}
}

// loadConfig reads config.yaml and applies flag and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, err
	}

	if viper.IsSet("log.level") {
		cfg.Log.Level = viper.GetString("log.level")
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	if f := viper.GetString("log.format"); f != "" {
		cfg.Log.Format = f
	}
	if viper.IsSet("history.enabled") {
		cfg.History.Enabled = viper.GetBool("history.enabled")
	}
	if viper.IsSet("history.path") {
		cfg.History.Path = viper.GetString("history.path")
	}
	if viper.IsSet("reading.tokenizer") {
		cfg.Reading.Tokenizer = viper.GetBool("reading.tokenizer")
	}
	if viper.IsSet("share.base_url") {
		cfg.Share.BaseURL = viper.GetString("share.base_url")
	}
	return cfg, nil
}

type setupOptions struct {
	history bool // open the history store when enabled in config
	quiet   bool // drop log output
}

// setup builds the engine and, when wanted, opens the history store.
func setup(opts setupOptions) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{
		configDir: getConfigDir(),
		config:    cfg,
		lexicon:   lexicon.Default(),
	}
	if opts.quiet {
		a.logger = logging.Discard()
	} else {
		a.logger = logging.New(cfg.Log)
	}

	if cfg.Reading.Lexicon != "" {
		lex := lexicon.NewDefault()
		if err := lex.LoadFromFile(cfg.Reading.Lexicon); err != nil {
			return nil, err
		}
		a.lexicon = lex
		a.logger.Debug("loaded user lexicon", "path", cfg.Reading.Lexicon, "entries", lex.Size())
	}

	chain := reading.Chain{a.lexicon}
	if cfg.Reading.Tokenizer {
		a.tokenizer = reading.NewTokenizer()
		chain = append(chain, a.tokenizer)
	}
	a.engine = conjugate.NewEngine(chain, a.logger)

	if opts.history && cfg.History.Enabled {
		path := cfg.HistoryPath(a.configDir)
		store, err := history.Open(path, cfg.History.Limit)
		if err != nil {
			// History is a convenience; the tables still work without it.
			a.logger.Warn("history disabled", "path", path, "error", err)
		} else {
			a.history = store
		}
	}
	return a, nil
}

// runTUI launches the TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal; keep logs off the screen.
	a, err := setup(setupOptions{history: true, quiet: true})
	if err != nil {
		return err
	}
	defer a.Close()

	var opts []tui.Option
	if len(args) == 1 {
		// A share link opens the verb it carries.
		v := args[0]
		if decoded, ok := share.DecodeURL(v); ok {
			v = decoded
		}
		opts = append(opts, tui.WithVerb(v))
	}

	p := tea.NewProgram(
		tui.NewApp(tui.Deps{
			Engine:    a.engine,
			Lexicon:   a.lexicon,
			History:   a.history,
			Config:    a.config,
			ConfigDir: a.configDir,
		}, opts...),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
