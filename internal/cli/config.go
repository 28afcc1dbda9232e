package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/textcal/pkg/calendar"
	"github.com/matzehuels/textcal/pkg/errors"
	"github.com/matzehuels/textcal/pkg/pipeline"
)

// Config is the optional TOML configuration file. Zero values mean "not set";
// command-line flags override every field.
//
//	week_start = "monday"
//	cell_width = 4
//	marker     = "brackets"
//	locale     = "de"
//	columns    = 4
//	holidays   = "de-nrw"
//	marks      = ["2024-12-24", "2024-12-31"]
//
//	[names]
//	months   = ["Jan", "Feb", ...]
//	weekdays = ["Sun", "Mon", ...]
//
//	[server]
//	addr = ":8080"
type Config struct {
	WeekStart   string       `toml:"week_start"`
	CellWidth   int          `toml:"cell_width"`
	Marker      string       `toml:"marker"`
	Locale      string       `toml:"locale"`
	Columns     int          `toml:"columns"`
	YearInTitle bool         `toml:"year_in_title"`
	Holidays    string       `toml:"holidays"`
	Marks       []string     `toml:"marks"`
	Names       *NamesConfig `toml:"names"`
	Server      ServerConfig `toml:"server"`
}

// NamesConfig overrides the month and weekday names of the locale.
// Weekdays start with Sunday.
type NamesConfig struct {
	Months   []string `toml:"months"`
	Weekdays []string `toml:"weekdays"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// loadConfig reads the config file at path. When path is empty the default
// location is used and a missing file yields an empty Config; an explicitly
// named file must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(dir, configFile)
	}
	if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// apply copies the set fields of cfg into opts.
func (cfg Config) apply(opts *pipeline.Options) error {
	if cfg.WeekStart != "" {
		opts.Start = cfg.WeekStart
	}
	if cfg.CellWidth != 0 {
		opts.CellWidth = cfg.CellWidth
	}
	if cfg.Marker != "" {
		opts.Marker = cfg.Marker
	}
	if cfg.Locale != "" {
		opts.Locale = cfg.Locale
	}
	if cfg.Columns != 0 && opts.Kind == pipeline.KindGrid {
		opts.Columns = cfg.Columns
	}
	if cfg.YearInTitle {
		opts.YearInTitle = true
	}
	if cfg.Names != nil {
		names, err := cfg.Names.names()
		if err != nil {
			return err
		}
		opts.Names = names
	}
	return nil
}

func (n *NamesConfig) names() (*calendar.Names, error) {
	if len(n.Months) != 12 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "names.months has %d entries, want 12", len(n.Months))
	}
	if len(n.Weekdays) != 7 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "names.weekdays has %d entries, want 7", len(n.Weekdays))
	}
	var names calendar.Names
	copy(names.Months[:], n.Months)
	copy(names.Weekdays[:], n.Weekdays)
	return &names, nil
}
