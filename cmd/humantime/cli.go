package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/auth-platform/libs/go/humantime/domain"
	"github.com/auth-platform/libs/go/humantime/duration"
	"github.com/auth-platform/libs/go/humantime/timestamp"
)

// CLI holds the global flags and the command tree.
type CLI struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Print version number and exit."`
	// Output selects how results are written to stdout.
	Output string `short:"o" env:"HUMANTIME_OUTPUT" default:"text" enum:"text,json" name:"output" help:"Result format: text or json."`
	// LogFormat selects the slog handler used on stderr.
	LogFormat string `env:"HUMANTIME_LOG_FORMAT" default:"text" enum:"text,json" name:"log-format" help:"Log format: text or json."`
	// LogLevel is the minimum level logged to stderr.
	LogLevel string `env:"HUMANTIME_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" name:"log-level" help:"Minimum log level."`

	Duration  DurationCmd  `cmd:"" help:"Parse or format durations."`
	Timestamp TimestampCmd `cmd:"" help:"Parse or format RFC 3339 timestamps."`
	Add       AddCmd       `cmd:"" help:"Add a duration to a timestamp."`
	Sub       SubCmd       `cmd:"" help:"Subtract a duration from a timestamp."`
	Between   BetweenCmd   `cmd:"" help:"Print the duration between two timestamps."`
}

type DurationCmd struct {
	Parse  DurationParseCmd  `cmd:"" help:"Parse duration text such as \"2h 37m\"."`
	Format DurationFormatCmd `cmd:"" help:"Format seconds and nanoseconds as duration text."`
}

type DurationParseCmd struct {
	Text string `arg:"" help:"Duration text."`
}

func (c *DurationParseCmd) Run(out *printer, log *slog.Logger) error {
	e, err := duration.Parse(c.Text)
	if err != nil {
		return newInputError(c.Text, err)
	}
	log.Debug("duration parsed", "input", c.Text, "seconds", e.Seconds(), "nanos", e.Subsec())
	return out.duration(e)
}

type DurationFormatCmd struct {
	Seconds uint64 `short:"s" required:"" help:"Whole seconds."`
	Nanos   uint32 `short:"n" default:"0" help:"Nanoseconds, below one second."`
}

func (c *DurationFormatCmd) Run(out *printer) error {
	if c.Nanos >= 1_000_000_000 {
		return fmt.Errorf("--nanos %d must be below one second", c.Nanos)
	}
	return out.duration(duration.New(c.Seconds, c.Nanos))
}

type TimestampCmd struct {
	Parse  TimestampParseCmd  `cmd:"" help:"Parse an RFC 3339 UTC timestamp."`
	Format TimestampFormatCmd `cmd:"" help:"Format Unix seconds as an RFC 3339 timestamp."`
	Now    TimestampNowCmd    `cmd:"" help:"Print the current time."`
}

type TimestampParseCmd struct {
	Text string `arg:"" help:"Timestamp text."`
	Weak bool   `short:"w" help:"Accept a space for T, a missing fraction and a missing Z."`
}

func (c *TimestampParseCmd) Run(out *printer, log *slog.Logger) error {
	parse := timestamp.ParseStrict
	if c.Weak {
		parse = timestamp.ParseWeak
	}
	v, err := parse(c.Text)
	if err != nil {
		return newInputError(c.Text, err)
	}
	log.Debug("timestamp parsed", "input", c.Text, "weak", c.Weak, "unix", v.Unix())
	return out.instant(v, timestamp.AutoPrecision)
}

type TimestampFormatCmd struct {
	Seconds   int64 `short:"s" required:"" help:"Seconds since the Unix epoch."`
	Nanos     int64 `short:"n" default:"0" help:"Nanoseconds added to seconds."`
	Precision int   `short:"p" default:"-1" help:"Fractional digits, 0-9, or -1 for the shortest exact form."`
}

func (c *TimestampFormatCmd) Run(out *printer) error {
	v, ok := timestamp.CheckedUnix(c.Seconds, c.Nanos)
	if !ok {
		return errors.New("seconds overflow after carrying --nanos")
	}
	return out.instant(v, c.Precision)
}

type TimestampNowCmd struct {
	Precision int `short:"p" default:"0" help:"Fractional digits, 0-9, or -1 for the shortest exact form."`
}

func (c *TimestampNowCmd) Run(out *printer) error {
	return out.instant(domain.Now().Instant(), c.Precision)
}

type AddCmd struct {
	Timestamp domain.Timestamp `arg:"" help:"Start timestamp."`
	Duration  domain.Duration  `arg:"" help:"Duration to add."`
}

func (c *AddCmd) Run(out *printer, log *slog.Logger) error {
	t, err := c.Timestamp.Add(c.Duration)
	if err != nil {
		return err
	}
	log.Debug("timestamp shifted", "from", c.Timestamp, "by", c.Duration)
	return out.instant(t.Instant(), timestamp.AutoPrecision)
}

type SubCmd struct {
	Timestamp domain.Timestamp `arg:"" help:"Start timestamp."`
	Duration  domain.Duration  `arg:"" help:"Duration to subtract."`
}

func (c *SubCmd) Run(out *printer, log *slog.Logger) error {
	t, err := c.Timestamp.SubDuration(c.Duration)
	if err != nil {
		return err
	}
	log.Debug("timestamp shifted", "from", c.Timestamp, "by", "-"+c.Duration.String())
	return out.instant(t.Instant(), timestamp.AutoPrecision)
}

type BetweenCmd struct {
	From domain.Timestamp `arg:"" help:"Earlier timestamp."`
	To   domain.Timestamp `arg:"" help:"Later timestamp."`
}

func (c *BetweenCmd) Run(out *printer) error {
	d, err := c.To.Since(c.From)
	if err != nil {
		return err
	}
	return out.duration(d.Elapsed())
}
