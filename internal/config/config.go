package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/session"
)

type Windows struct {
	Perfect time.Duration `yaml:"perfect"`
	Good    time.Duration `yaml:"good"`
	Okay    time.Duration `yaml:"okay"`
	Miss    time.Duration `yaml:"miss"`
}

type Config struct {
	Lookahead   time.Duration `yaml:"lookahead"`    // How early notes become active
	MissGrace   time.Duration `yaml:"grace"`        // How late unjudged notes are forced to miss
	ChartOffset time.Duration `yaml:"offset"`       // Added to every chart timestamp
	Delay       time.Duration `yaml:"delay"`        // Lead in before the song starts
	Keys        string        `yaml:"keys"`         // One key per lane, lane 1 first
	FramePeriod time.Duration `yaml:"frame_period"` // Render frame period
	Scroll      time.Duration `yaml:"scroll"`       // Song time per terminal row
	Spacing     int           `yaml:"spacing"`      // Columns between lanes
	BarRow      int           `yaml:"bar_row"`      // Rows between hit bar and bottom
	Windows     Windows       `yaml:"windows"`
}

func Default() Config {
	return Config{
		Lookahead:   4 * time.Second,
		MissGrace:   500 * time.Millisecond,
		Delay:       1500 * time.Millisecond,
		Keys:        "dfjk",
		FramePeriod: 4 * time.Millisecond,
		Scroll:      40 * time.Millisecond,
		Spacing:     6,
		BarRow:      6,
		Windows: Windows{
			Perfect: 25 * time.Millisecond,
			Good:    50 * time.Millisecond,
			Okay:    100 * time.Millisecond,
			Miss:    200 * time.Millisecond,
		},
	}
}

// Load overlays the YAML file at path onto c. Keys missing from the file
// keep their current values.
func Load(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if nil != err {
		return fmt.Errorf("unable to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); nil != err {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Lookahead <= 0 {
		return errors.New("lookahead must be positive")
	}
	if c.MissGrace <= 0 {
		return errors.New("grace must be positive")
	}
	w := c.Windows
	if w.Perfect <= 0 || w.Good <= w.Perfect || w.Okay <= w.Good || w.Miss <= w.Okay {
		return fmt.Errorf("judgement windows must be positive and increasing: %v %v %v %v", w.Perfect, w.Good, w.Okay, w.Miss)
	}
	if len([]rune(c.Keys)) == 0 {
		return errors.New("at least one key is required")
	}
	if c.Scroll <= 0 {
		return errors.New("scroll must be positive")
	}
	if c.FramePeriod <= 0 {
		return errors.New("frame period must be positive")
	}
	if c.Spacing < 1 {
		return errors.New("lane spacing must be at least one column")
	}
	return nil
}

func (c *Config) Judgements() []game.Judgement {
	return []game.Judgement{
		{Quality: game.Perfect, Window: c.Windows.Perfect, Name: "Perfect"},
		{Quality: game.Good, Window: c.Windows.Good, Name: "Good"},
		{Quality: game.Okay, Window: c.Windows.Okay, Name: "Okay"},
		{Quality: game.Miss, Window: c.Windows.Miss, Name: "Miss"},
	}
}

func (c *Config) Session() session.Config {
	return session.Config{
		Lookahead:  c.Lookahead,
		MissGrace:  c.MissGrace,
		Judgements: c.Judgements(),
	}
}
