package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vippsas/parencheck"
	"github.com/vippsas/parencheck/scanner"
	"golang.org/x/term"
)

const (
	configName = "parencheck"
	envPrefix  = "PARENCHECK"
)

var (
	config    *viper.Viper
	configErr error

	// flagBindings maps config keys to the flags that override them
	flagBindings = make(map[string]*pflag.Flag)
)

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Config is everything that can be set from flags, environment or the
// parencheck.yaml file.
type Config struct {
	StartMarker     string    `mapstructure:"start_marker"`
	EndMarker       string    `mapstructure:"end_marker"`
	MarkerRegexp    bool      `mapstructure:"marker_regexp"`
	AllRegions      bool      `mapstructure:"all_regions"`
	Dialect         string    `mapstructure:"dialect"`
	RangeOfInterest string    `mapstructure:"range_of_interest"`
	MaxUnclosed     int       `mapstructure:"max_unclosed"`
	Extensions      []string  `mapstructure:"extensions"`
	Format          string    `mapstructure:"format"`
	Color           string    `mapstructure:"color"`
	Strict          bool      `mapstructure:"strict"`
	Concurrency     int       `mapstructure:"concurrency"`
	Debug           bool      `mapstructure:"debug"`
	Log             LogConfig `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("start_marker", scanner.DefaultStartMarker)
	v.SetDefault("end_marker", scanner.DefaultEndMarker)
	v.SetDefault("marker_regexp", false)
	v.SetDefault("all_regions", false)
	v.SetDefault("dialect", scanner.JavaScript.Name)
	v.SetDefault("range_of_interest", "")
	v.SetDefault("max_unclosed", parencheck.DefaultMaxUnclosed)
	v.SetDefault("extensions", parencheck.DefaultExtensions)
	v.SetDefault("format", "text")
	v.SetDefault("color", "auto")
	v.SetDefault("strict", false)
	v.SetDefault("concurrency", parencheck.DefaultConcurrency)
	v.SetDefault("debug", false)
	v.SetDefault("log.level", "info")
}

// initConfig runs before every command. Errors are kept for LoadConfig,
// since cobra initializers cannot fail.
func initConfig() {
	v := viper.New()
	config, configErr = v, nil

	setDefaults(v)
	for key, flag := range flagBindings {
		if err := v.BindPFlag(key, flag); err != nil {
			configErr = errors.Wrapf(err, "could not bind flag --%s", flag.Name)
			return
		}
	}

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			configErr = errors.Wrap(err, "could not read config file")
			return
		}
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			configErr = errors.Wrap(err, "could not read config file")
		}
		// no config file; defaults, flags and environment apply
	}
}

func bindFlag(key string, flags *pflag.FlagSet, name string) {
	flag := flags.Lookup(name)
	if flag == nil {
		panic("no flag --" + name)
	}
	flagBindings[key] = flag
}

func LoadConfig() (Config, error) {
	if configErr != nil {
		return Config{}, configErr
	}
	var result Config
	if err := config.Unmarshal(&result); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return result, nil
}

// Options turns the configuration into check options.
func (c Config) Options(logger logrus.FieldLogger) (parencheck.Options, error) {
	markers, err := scanner.NewMarkers(c.StartMarker, c.EndMarker, c.MarkerRegexp)
	if err != nil {
		return parencheck.Options{}, errors.Wrap(err, "invalid configuration")
	}
	dialect, err := scanner.LookupDialect(c.Dialect)
	if err != nil {
		return parencheck.Options{}, errors.Wrap(err, "invalid configuration")
	}
	rangeOfInterest, err := parencheck.ParseRange(c.RangeOfInterest)
	if err != nil {
		return parencheck.Options{}, errors.Wrap(err, "invalid configuration")
	}
	// the library reads 0 as "use the default"
	if c.MaxUnclosed == 0 {
		return parencheck.Options{}, errors.New("invalid configuration: max_unclosed must be positive, or negative to list all")
	}
	return parencheck.Options{
		Markers:         markers,
		Dialect:         dialect,
		AllRegions:      c.AllRegions,
		RangeOfInterest: rangeOfInterest,
		MaxUnclosed:     c.MaxUnclosed,
		Extensions:      c.Extensions,
		Concurrency:     c.Concurrency,
		Logger:          logger,
	}, nil
}

// NewLogger builds the stderr logger of the command line tool.
func (c Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if c.Debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger, nil
}

// UseColor resolves the color setting for output written to w.
func (c Config) UseColor(w io.Writer) (bool, error) {
	switch strings.ToLower(c.Color) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return !color.NoColor && isTerminal(w), nil
	default:
		return false, errors.Errorf("invalid configuration: unknown color mode %q, expected auto, always or never", c.Color)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
