// Package conf registers descstats configuration on a kingpin application.
//
// Every option can be given on the command line or through an environment
// variable named DESCSTATS_<FLAG>, for example:
//
//	DESCSTATS_LOG -l --log <debug, info, warn, error, fatal, panic> Default: error
//
// Command line values take precedence over the environment.
package conf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvPrefix is prepended to upper-cased flag names to form environment variable names.
const EnvPrefix = "DESCSTATS_"

const defaultLogLevel = "error"

// MaxDecimals bounds --decimals.
const MaxDecimals = 100

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the parsed options. Fields are populated by Application.Parse.
type Config struct {
	File      string
	Column    string
	With      string
	Where     string
	Format    string
	Decimals  int
	Delimiter string
	SkipRows  int
	Log       string
}

// EnvName returns the environment variable bound to the flag name.
func EnvName(name string) string {
	return EnvPrefix + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}

// New registers all flags on app and returns the config they populate.
func New(app *kingpin.Application) *Config {
	c := &Config{}

	flag(app, "file", "CSV file to read, '-' for stdin").Short('f').Default("-").StringVar(&c.File)
	flag(app, "column", "Column to summarize (default: last column)").Short('c').StringVar(&c.Column)
	flag(app, "with", "Second column; enables covariance against --column").Short('w').StringVar(&c.With)
	flag(app, "where", "Only use rows where a column holds a value, as column=value").StringVar(&c.Where)
	flag(app, "format", "Output format: text, json").Default(FormatText).EnumVar(&c.Format, FormatText, FormatJSON)
	flag(app, "decimals", "Round reported values to this many decimal places, -1 for full precision").Short('d').Default("-1").IntVar(&c.Decimals)
	flag(app, "delimiter", "CSV field delimiter").Default(",").StringVar(&c.Delimiter)
	flag(app, "skip-rows", "Rows to skip before the CSV header").Default("0").IntVar(&c.SkipRows)
	flag(app, "log", "Log level: debug, info, warn, error, fatal, panic").Short('l').Default(defaultLogLevel).StringVar(&c.Log)

	return c
}

func flag(app *kingpin.Application, name, help string) *kingpin.FlagClause {
	return app.Flag(name, help).Envar(EnvName(name))
}

// Validate checks combinations kingpin cannot express.
func (c *Config) Validate() error {
	if c.With != "" && c.Column == "" {
		return errors.New("--with requires --column")
	}
	if c.With != "" && c.With == c.Column {
		logrus.Debugf("covariance of %q with itself is its sample variance", c.Column)
	}
	if c.Decimals > MaxDecimals {
		return errors.Errorf("decimals must be at most %d, got %d", MaxDecimals, c.Decimals)
	}
	if c.Where != "" {
		if _, _, err := c.Filter(); err != nil {
			return err
		}
	}
	if len([]rune(c.Delimiter)) != 1 {
		return errors.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.SkipRows < 0 {
		return errors.Errorf("skip-rows must not be negative, got %d", c.SkipRows)
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// Columns returns the columns to load, in report order.
func (c *Config) Columns() []string {
	switch {
	case c.Column == "":
		return nil
	case c.With == "":
		return []string{c.Column}
	default:
		return []string{c.Column, c.With}
	}
}

// Filter splits --where into a column name and the value it must hold.
// An empty column means no filter.
func (c *Config) Filter() (column, value string, err error) {
	if c.Where == "" {
		return "", "", nil
	}
	parts := strings.SplitN(c.Where, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return "", "", errors.Errorf("where must be column=value, got %q", c.Where)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// LogLevel returns the configured log level.
// If it cannot parse the log level, it returns the default value.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log)
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(defaultLogLevel)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}
