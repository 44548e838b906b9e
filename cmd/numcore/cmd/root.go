package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/numcore/foundation/core/config"
	mdwerror "github.com/msto63/numcore/foundation/core/error"
	"github.com/msto63/numcore/foundation/core/i18n"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
	"github.com/msto63/numcore/internal/calc"
)

// options are the persistent flags
type options struct {
	configFile string
	locale     string
	precision  string
	unit       string
	digits     int
	verbose    bool
}

// app is built once per invocation and shared by the subcommands
type app struct {
	settings   config.Settings
	configPath string
	session    string
	logger     *mdwlog.Logger
	engine     *calc.Engine
	catalog    *i18n.Catalog
}

// NewRootCmd creates the numcore command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{}

	root := &cobra.Command{
		Use:   "numcore",
		Short: "numcore - numeric toolkit and calculator",
		Long: `numcore evaluates numeric commands of the form OBJECT.METHOD args [key=value].

Objects:
  ANGLE   - angle unit conversion
  TRIG    - sine, cosine and tangent with exact quadrant results
  NUM     - bounds, integer tests, digit counts, slope and logarithm
  COMBIN  - factorials, combinations and permutations
  POW     - powers and real roots
  BITS    - shifts, rotations and byte order flips
  STR     - C-locale and locale-aware number text
  CALC    - session commands (LIST, HELP, ALIAS, SET)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: numcore.toml in . or the user config directory)")
	flags.StringVar(&opts.locale, "locale", "", "locale for number formatting, e.g. de-DE")
	flags.StringVar(&opts.precision, "precision", "", "float32 or float64")
	flags.StringVar(&opts.unit, "unit", "", "default angle unit: deg, rad or grad")
	flags.IntVar(&opts.digits, "digits", 0, "maximum fraction digits of results")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newEvalCmd(a),
		newListCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// setup loads the settings (defaults, file, environment, flags in that order)
// and builds the logger and the engine
func (a *app) setup(cmd *cobra.Command, opts *options) error {
	path := opts.configFile
	if path == "" {
		if found, err := config.FindConfigFile(config.DefaultDiscoveryOptions()); err == nil {
			path = found
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("locale") {
		if err := i18n.ValidateLocale(opts.locale); err != nil {
			return mdwerror.Wrap(err, i18n.DefaultCatalog().T(settings.Locale, "cli.unknown_locale", opts.locale)).
				WithCode(mdwerror.CodeInvalidConfig)
		}
		settings.Locale = opts.locale
	}
	if f.Changed("precision") {
		settings.Precision = opts.precision
	}
	if f.Changed("unit") {
		settings.AngleUnit = opts.unit
	}
	if f.Changed("digits") {
		settings.Display.MaxFractionDigits = opts.digits
	}
	if opts.verbose {
		settings.Log.Level = mdwlog.LevelDebug.String()
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	level, _ := mdwlog.ParseLevel(settings.Log.Level)
	format, _ := mdwlog.ParseFormat(settings.Log.Format)
	a.session = uuid.NewString()
	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "numcore",
	}).WithCorrelationID(a.session)

	calcSettings, err := calc.SettingsFrom(settings)
	if err != nil {
		return err
	}
	a.engine, err = calc.New(calc.EngineOptions{Logger: a.logger, Settings: &calcSettings})
	if err != nil {
		return err
	}

	a.settings = settings
	a.configPath = path
	a.catalog = i18n.DefaultCatalog()

	a.logger.Debug("settings loaded", mdwlog.Fields{
		"command":   cmd.Name(),
		"config":    path,
		"locale":    settings.Locale,
		"precision": settings.Precision,
		"unit":      settings.AngleUnit,
	})
	return nil
}

// uiLocale is the catalog locale closest to the configured number locale
func (a *app) uiLocale() string {
	return i18n.DetectLocale(a.settings.Locale, a.catalog.Locales(), i18n.DefaultLocale)
}

func printError(w io.Writer, err error) {
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		fmt.Fprintf(w, "error [%s]: %v\n", code, err)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
