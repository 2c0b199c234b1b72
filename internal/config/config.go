// Package config loads goseries settings from a TOML file.
//
//	[series]
//	var = "x"
//	precision = 6
//	max_precision = 64
//
//	[server]
//	addr = ":8080"
//	read_timeout = "15s"
//	write_timeout = "15s"
//	idle_timeout = "60s"
//	max_body_bytes = 1048576
//
//	[batch]
//	workers = 4
//	max_jobs = 256
//
//	[log]
//	level = "info"
//	format = "text"
//
// Keys left out of the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig marks a file that parsed but holds unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Series SeriesConfig
	Server ServerConfig
	Batch  BatchConfig
	Log    LogConfig
}

// SeriesConfig holds expansion defaults. MaxPrecision caps what a single
// request may ask for.
type SeriesConfig struct {
	Var          string
	Precision    int
	MaxPrecision int
}

type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxBodyBytes      int64
}

// BatchConfig bounds batch expansion: Workers jobs run at once and a batch
// may hold at most MaxJobs jobs.
type BatchConfig struct {
	Workers int
	MaxJobs int
}

type LogConfig struct {
	Level  string
	Format string
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Series: SeriesConfig{Var: "x", Precision: 6, MaxPrecision: 64},
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		Batch: BatchConfig{Workers: runtime.NumCPU(), MaxJobs: 256},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// duration decodes TOML strings such as "15s".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// file mirrors the TOML layout. TOML integers are 64-bit.
type file struct {
	Series struct {
		Var          string `toml:"var"`
		Precision    int64  `toml:"precision"`
		MaxPrecision int64  `toml:"max_precision"`
	} `toml:"series"`
	Server struct {
		Addr              string   `toml:"addr"`
		ReadHeaderTimeout duration `toml:"read_header_timeout"`
		ReadTimeout       duration `toml:"read_timeout"`
		WriteTimeout      duration `toml:"write_timeout"`
		IdleTimeout       duration `toml:"idle_timeout"`
		MaxBodyBytes      int64    `toml:"max_body_bytes"`
	} `toml:"server"`
	Batch struct {
		Workers int64 `toml:"workers"`
		MaxJobs int64 `toml:"max_jobs"`
	} `toml:"batch"`
	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
}

func fromConfig(c Config) file {
	var f file
	f.Series.Var = c.Series.Var
	f.Series.Precision = int64(c.Series.Precision)
	f.Series.MaxPrecision = int64(c.Series.MaxPrecision)
	f.Server.Addr = c.Server.Addr
	f.Server.ReadHeaderTimeout = duration{c.Server.ReadHeaderTimeout}
	f.Server.ReadTimeout = duration{c.Server.ReadTimeout}
	f.Server.WriteTimeout = duration{c.Server.WriteTimeout}
	f.Server.IdleTimeout = duration{c.Server.IdleTimeout}
	f.Server.MaxBodyBytes = c.Server.MaxBodyBytes
	f.Batch.Workers = int64(c.Batch.Workers)
	f.Batch.MaxJobs = int64(c.Batch.MaxJobs)
	f.Log.Level = c.Log.Level
	f.Log.Format = c.Log.Format
	return f
}

func (f file) toConfig() (Config, error) {
	var c Config
	var err error
	narrow := func(field string, v int64) int {
		n, convErr := safecast.Conv[int](v)
		if convErr != nil && err == nil {
			err = fmt.Errorf("%s: %v: %w", field, convErr, ErrInvalidConfig)
		}
		return n
	}
	c.Series = SeriesConfig{
		Var:          f.Series.Var,
		Precision:    narrow("series.precision", f.Series.Precision),
		MaxPrecision: narrow("series.max_precision", f.Series.MaxPrecision),
	}
	c.Server = ServerConfig{
		Addr:              f.Server.Addr,
		ReadHeaderTimeout: f.Server.ReadHeaderTimeout.Duration,
		ReadTimeout:       f.Server.ReadTimeout.Duration,
		WriteTimeout:      f.Server.WriteTimeout.Duration,
		IdleTimeout:       f.Server.IdleTimeout.Duration,
		MaxBodyBytes:      f.Server.MaxBodyBytes,
	}
	c.Batch = BatchConfig{
		Workers: narrow("batch.workers", f.Batch.Workers),
		MaxJobs: narrow("batch.max_jobs", f.Batch.MaxJobs),
	}
	c.Log = LogConfig{Level: f.Log.Level, Format: f.Log.Format}
	return c, err
}

// Load reads path over the defaults. An empty path or a missing file yields
// Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f := fromConfig(Default())
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return finish(path, f)
}

// Parse reads TOML text over the defaults.
func Parse(data string) (Config, error) {
	f := fromConfig(Default())
	if _, err := toml.Decode(data, &f); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return finish("config", f)
}

func finish(source string, f file) (Config, error) {
	c, err := f.toConfig()
	if err == nil {
		err = c.Validate()
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format+": %w", append(args, ErrInvalidConfig)...))
		}
	}
	check(strings.TrimSpace(c.Series.Var) != "", "series.var must not be empty")
	check(c.Series.Precision >= 0, "series.precision %d is negative", c.Series.Precision)
	check(c.Series.MaxPrecision >= c.Series.Precision, "series.max_precision %d is below precision %d",
		c.Series.MaxPrecision, c.Series.Precision)
	check(c.Server.Addr != "", "server.addr must not be empty")
	check(c.Server.MaxBodyBytes > 0, "server.max_body_bytes must be positive")
	check(c.Batch.Workers > 0, "batch.workers must be positive")
	check(c.Batch.MaxJobs > 0, "batch.max_jobs must be positive")
	_, levelErr := parseLevel(c.Log.Level)
	check(levelErr == nil, "log.level %q is unknown", c.Log.Level)
	check(c.Log.Format == "text" || c.Log.Format == "json", "log.format %q must be text or json", c.Log.Format)
	return errors.Join(errs...)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// Logger builds the slog logger described by the [log] section.
func (l LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level %q: %w", l.Level, ErrInvalidConfig)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch l.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("log.format %q: %w", l.Format, ErrInvalidConfig)
}
