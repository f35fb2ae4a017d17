package config

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/lanes/internal/convert"
	"git.lost.host/meutraa/lanes/internal/log"
)

const (
	PlayCommand    = "play"
	CheckCommand   = "check"
	ConvertCommand = "convert"
)

// Args holds everything parsed from the command line.
type Args struct {
	Command string
	Config  Config

	Chart    string // play, check
	Audio    string
	Device   string
	LogLevel log.Level
	LogFile  string

	Midi    string // convert
	Output  string
	TapKey  uint8
	HoldKey uint8
}

type CLI struct {
	app  *kingpin.Application
	args Args

	configPath string
	logLevel   string
	durations  map[string]*time.Duration
	keys       string
	set        map[string]bool
}

func NewCLI() *CLI {
	c := &CLI{
		app:       kingpin.New("lanes", "Four lane rhythm game for the terminal"),
		durations: map[string]*time.Duration{},
		set:       map[string]bool{},
	}
	c.app.Version("0.3.0")

	play := c.app.Command(PlayCommand, "Play a chart").Default()
	play.Arg("chart", "Chart file").Required().ExistingFileVar(&c.args.Chart)
	play.Flag("audio", "Song audio (.mp3, .ogg, .wav)").Short('a').ExistingFileVar(&c.args.Audio)
	play.Flag("device", "Read press and release from an evdev device").Short('i').StringVar(&c.args.Device)
	play.Flag("keys", "Keys for each lane").Short('k').Action(c.mark("keys")).StringVar(&c.keys)
	c.duration(play, "delay", "Start delay", 'd')
	c.duration(play, "lookahead", "How early notes become active", 0)
	c.duration(play, "grace", "How late unjudged notes become misses", 0)
	c.duration(play, "frame-period", "Render frame period", 'p')
	c.duration(play, "scroll", "Song time per terminal row, lower is faster", 's')
	c.common(play)

	check := c.app.Command(CheckCommand, "Load a chart and print a summary")
	check.Arg("chart", "Chart file").Required().ExistingFileVar(&c.args.Chart)
	c.common(check)

	conv := c.app.Command(ConvertCommand, "Convert a MIDI file into a chart")
	conv.Arg("midi", "MIDI file").Required().ExistingFileVar(&c.args.Midi)
	conv.Flag("output", "Chart file to write, stdout when empty").Short('o').StringVar(&c.args.Output)
	conv.Flag("tap-key", "MIDI key of tap notes").Default(key(convert.DefaultMapping.TapKey)).Uint8Var(&c.args.TapKey)
	conv.Flag("hold-key", "MIDI key of hold notes").Default(key(convert.DefaultMapping.HoldKey)).Uint8Var(&c.args.HoldKey)
	c.common(conv)

	return c
}

func (c *CLI) common(cmd *kingpin.CmdClause) {
	cmd.Flag("config", "YAML config file").Short('c').ExistingFileVar(&c.configPath)
	levels := log.LevelNames()
	cmd.Flag("log-level", "One of "+strings.Join(levels, ", ")).Default(log.LevelInfo.String()).EnumVar(&c.logLevel, levels...)
	cmd.Flag("log-file", "Write the log here").StringVar(&c.args.LogFile)
	c.duration(cmd, "offset", "Chart calibration offset", 0)
}

func key(k uint8) string {
	return strconv.Itoa(int(k))
}

func (c *CLI) duration(cmd *kingpin.CmdClause, name, help string, short rune) {
	d, ok := c.durations[name]
	if !ok {
		d = new(time.Duration)
		c.durations[name] = d
	}
	f := cmd.Flag(name, help).Action(c.mark(name))
	if short != 0 {
		f = f.Short(short)
	}
	f.DurationVar(d)
}

func (c *CLI) mark(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		c.set[name] = true
		return nil
	}
}

// Parse reads args, then builds the config from the defaults, the config
// file and the flags the user set, in that order.
func (c *CLI) Parse(args []string) (*Args, error) {
	command, err := c.app.Parse(args)
	if nil != err {
		return nil, err
	}
	c.args.Command = command
	if c.args.LogLevel, err = log.ParseLevel(c.logLevel); nil != err {
		return nil, err
	}

	cfg := Default()
	if c.configPath != "" {
		if err := Load(c.configPath, &cfg); nil != err {
			return nil, err
		}
	}

	targets := map[string]*time.Duration{
		"delay":        &cfg.Delay,
		"lookahead":    &cfg.Lookahead,
		"grace":        &cfg.MissGrace,
		"frame-period": &cfg.FramePeriod,
		"scroll":       &cfg.Scroll,
		"offset":       &cfg.ChartOffset,
	}
	for name, target := range targets {
		if c.set[name] {
			*target = *c.durations[name]
		}
	}
	if c.set["keys"] {
		cfg.Keys = c.keys
	}

	if err := cfg.Validate(); nil != err {
		return nil, err
	}
	c.args.Config = cfg
	return &c.args, nil
}
