// Package main provides the entry point for the stutter CLI application.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/dgnsrekt/stutter/internal/extract"
	"github.com/dgnsrekt/stutter/internal/options"
	"github.com/dgnsrekt/stutter/internal/stutter"
	"github.com/dgnsrekt/stutter/ui"
	"github.com/dgnsrekt/stutter/utils"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// skipValidation marks commands that run without validating reader options.
const skipValidation = "skipValidation"

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile    string
	localeID      string
	from          string
	fromClipboard bool
	useClipboard  bool
	mouse         bool
	showContext   bool
	showLookahead bool

	store *options.Store

	rootCmd = &cobra.Command{
		Use:   "stutter [SOURCE]",
		Short: "Read text one word at a time, fast.",
		Long: paragraph(
			fmt.Sprintf("\nRead text in the terminal %s, with the focus letter held in place.", keyword("one word at a time")),
		),
		Example: paragraph("stutter notes.md\nstutter --wpm 450 https://example.com/post.html\ncat essay.txt | stutter --from \"where I stopped\""),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

// source provides a readable text source.
type source struct {
	reader io.ReadCloser
	URL    string
}

// sourceFromArg parses an argument and creates a readable source for it.
func sourceFromArg(arg string) (*source, error) {
	// from stdin
	if arg == "-" {
		return &source{reader: os.Stdin}, nil
	}

	// HTTP(S) URLs:
	if u, err := url.ParseRequestURI(arg); err == nil && strings.Contains(arg, "://") {
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("%s is not a supported protocol", u.Scheme)
		}
		// consumer of the source is responsible for closing the ReadCloser.
		resp, err := http.Get(u.String()) //nolint: noctx,bodyclose
		if err != nil {
			return nil, fmt.Errorf("unable to get url: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("HTTP status %d", resp.StatusCode)
		}
		return &source{resp.Body, u.String()}, nil
	}

	arg = utils.ExpandPath(arg)
	st, err := os.Stat(arg)
	if err == nil && st.IsDir() {
		return nil, fmt.Errorf("%s is a directory", arg)
	}

	r, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	u, err := filepath.Abs(arg)
	if err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("unable to get absolute path: %w", err)
	}
	return &source{r, u}, nil
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to open file: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

// loadText resolves the text to read and a name for it. The argument wins
// over a stdin pipe.
func loadText(args []string) (text string, name string, err error) {
	var src *source
	switch {
	case len(args) > 0:
		src, err = sourceFromArg(args[0])
		if err != nil {
			return "", "", err
		}
	default:
		pipe, err := stdinIsPipe()
		if err != nil {
			return "", "", err
		}
		if !pipe {
			return "", "", errors.New("missing source: pass a file, a URL, or pipe text on stdin")
		}
		src = &source{reader: os.Stdin}
	}
	defer src.reader.Close() //nolint:errcheck

	text, err = extract.Text(src.reader, src.URL)
	if err != nil {
		return "", "", fmt.Errorf("unable to read %s: %w", displayName(src.URL), err)
	}
	return text, displayName(src.URL), nil
}

func displayName(u string) string {
	if u == "" {
		return "stdin"
	}
	return u
}

func validateOptions(cmd *cobra.Command) error {
	if cmd.Flags().Changed("config") {
		viper.SetConfigFile(utils.ExpandPath(configFile))
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read config file: %w", err)
		}
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
	}

	// grab config values from Viper
	mouse = viper.GetBool("mouse")
	showContext = viper.GetBool("context")
	showLookahead = viper.GetBool("lookahead")
	localeID = viper.GetString("locale")

	if fromClipboard && from != "" {
		return errors.New("cannot use both --from and --from-clipboard")
	}
	if useClipboard && fromClipboard {
		return errors.New("cannot use both --clipboard and --from-clipboard")
	}
	if useClipboard && cmd.Flags().NArg() > 0 {
		return errors.New("cannot read a source and the clipboard at the same time")
	}

	// config and man must keep working with a broken configuration file.
	if cmd.Annotations[skipValidation] != "" {
		return nil
	}
	if err := store.Validate(); err != nil {
		return err
	}
	return nil
}

func execute(_ *cobra.Command, args []string) error {
	var (
		text string
		name string
		err  error
	)
	if useClipboard {
		raw, err := clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("unable to read clipboard: %w", err)
		}
		if text, err = extract.Text(strings.NewReader(raw), ""); err != nil {
			return fmt.Errorf("unable to read clipboard: %w", err)
		}
		name = "clipboard"
	} else {
		text, name, err = loadText(args)
		if err != nil {
			return err
		}
	}

	start := from
	if fromClipboard {
		start, err = clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("unable to read clipboard: %w", err)
		}
	}

	return runTUI(name, stutter.Request{Text: text, StartText: start})
}

func runTUI(name string, req stutter.Request) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec
		return errors.New("stutter needs a terminal to read in, try 'stutter stats' instead")
	}

	// Read environment to get debugging stuff
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}

	if localeID != "" {
		cfg.Locale = localeID
	}
	req.Locale = cfg.Locale

	cfg.Source = name
	cfg.EnableMouse = mouse
	cfg.ShowContext = showContext
	cfg.ShowLookahead = showLookahead

	store.Watch()

	// Run Bubble Tea program
	if _, err := ui.NewProgram(cfg, store, req).Run(); err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}

	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	store = options.New(viper.GetViper())

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	flags.StringVarP(&localeID, "locale", "L", "", "locale for punctuation timing (default from $LANG)")
	flags.Int("wpm", options.Defaults[options.WPM], "reading speed in words per minute")
	flags.Int("skip", options.Defaults[options.SkipCount], "words jumped by each skip")
	flags.Int("slow-start", options.Defaults[options.SlowStartCount], "words shown slower when starting")
	flags.Int("max-word-length", options.Defaults[options.MaxWordLength], "split longer words (0 to disable)")

	rootCmd.Flags().StringVar(&from, "from", "", "start at the word where this text begins")
	rootCmd.Flags().BoolVar(&fromClipboard, "from-clipboard", false, "start at the text held in the clipboard")
	rootCmd.Flags().BoolVarP(&useClipboard, "clipboard", "c", false, "read the clipboard instead of a source")
	rootCmd.Flags().BoolVarP(&mouse, "mouse", "m", false, "enable mouse support")
	_ = rootCmd.Flags().MarkHidden("mouse")
	rootCmd.Flags().Bool("context", true, "show the words around the current one")
	rootCmd.Flags().Bool("lookahead", true, "show the upcoming word")

	// Config bindings
	_ = viper.BindPFlag("locale", flags.Lookup("locale"))
	_ = viper.BindPFlag(options.Key(options.WPM), flags.Lookup("wpm"))
	_ = viper.BindPFlag(options.Key(options.SkipCount), flags.Lookup("skip"))
	_ = viper.BindPFlag(options.Key(options.SlowStartCount), flags.Lookup("slow-start"))
	_ = viper.BindPFlag(options.Key(options.MaxWordLength), flags.Lookup("max-word-length"))
	_ = viper.BindPFlag("mouse", rootCmd.Flags().Lookup("mouse"))
	_ = viper.BindPFlag("context", rootCmd.Flags().Lookup("context"))
	_ = viper.BindPFlag("lookahead", rootCmd.Flags().Lookup("lookahead"))

	viper.SetDefault("context", true)
	viper.SetDefault("lookahead", true)

	rootCmd.AddCommand(configCmd, manCmd, statsCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "stutter")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "stutter")}, dirs...)
	}

	if c := os.Getenv("STUTTER_CONFIG_HOME"); c != "" {
		dirs = append([]string{utils.ExpandPath(c)}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("stutter")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("stutter")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	configFile = filepath.Join(dirs[0], "stutter.yml")
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
		return
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Warn("Could not parse configuration file", "err", err)
	}
}
