package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"

	"git.lost.host/meutraa/lanes/internal/clock"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/journal"
	"git.lost.host/meutraa/lanes/internal/log"
	"git.lost.host/meutraa/lanes/internal/parser"
	"git.lost.host/meutraa/lanes/internal/render"
	"git.lost.host/meutraa/lanes/internal/session"
	"git.lost.host/meutraa/lanes/internal/theme"
)

// How long judgement text and miss brackets stay on screen
const cueDuration = 300 * time.Millisecond

type Program struct {
	Args     *config.Args
	Log      *log.Logger
	Parser   parser.Parser
	Theme    theme.Theme
	Renderer render.Renderer

	chart   *game.Chart
	session *session.Session
	journal *journal.Journal
	clock   clock.Clock
	field   render.Field
	events  chan input.Event
	closers []func()

	streamer beep.StreamSeekCloser
	format   beep.Format

	rows, middle int
	quit         bool
}

func (p *Program) Init() error {
	cfg := p.Args.Config

	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{Offset: cfg.ChartOffset}
	p.Theme = &theme.DefaultTheme{}
	renderer := &render.DefaultRenderer{Raw: p.Args.Device != ""}
	p.Renderer = renderer

	var err error
	p.chart, err = p.Parser.ParseFile(p.Args.Chart)
	if nil != err {
		return err
	}
	if len([]rune(cfg.Keys)) < p.chart.Lanes {
		p.Log.Warnf("chart has %d lanes but only %d keys are bound", p.chart.Lanes, len([]rune(cfg.Keys)))
	}

	p.journal, err = journal.Open()
	if nil != err {
		return err
	}
	p.closers = append(p.closers, func() { p.journal.Close() })

	p.session = session.New(p.chart, cfg.Session(),
		session.WithRecorder(p.journal),
		session.WithCue(p.cue),
		session.WithLogger(p.Log.With("session")),
	)

	p.field = render.Field{
		Lanes:   p.chart.Lanes,
		Spacing: cfg.Spacing,
		Scroll:  cfg.Scroll,
		BarRow:  cfg.BarRow,
		Theme:   p.Theme,
	}

	p.events = make(chan input.Event, 128)
	if err := p.openInput(cfg.Keys); nil != err {
		return err
	}

	if p.Args.Audio == "" {
		p.clock = clock.NewWall(time.Now().Add(cfg.Delay))
		return nil
	}
	return p.openAudio()
}

func (p *Program) openInput(keys string) error {
	if p.Args.Device != "" {
		lanes, err := input.CodeLanes(keys)
		if nil != err {
			return err
		}
		d := &input.Device{Lanes: lanes, Log: p.Log.With("input")}
		return d.Open(p.Args.Device, p.events)
	}

	k := &input.Keyboard{Lanes: input.KeyLanes(keys)}
	closer, err := k.Open(p.events)
	if nil != err {
		return err
	}
	p.closers = append(p.closers, closer)
	return nil
}

func (p *Program) openAudio() error {
	f, err := os.Open(p.Args.Audio)
	if nil != err {
		return fmt.Errorf("unable to open audio: %w", err)
	}

	switch strings.ToLower(filepath.Ext(p.Args.Audio)) {
	case ".mp3":
		p.streamer, p.format, err = mp3.Decode(f)
	case ".ogg":
		p.streamer, p.format, err = vorbis.Decode(f)
	case ".wav":
		p.streamer, p.format, err = wav.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported audio format %s", p.Args.Audio)
	}
	if nil != err {
		f.Close()
		return fmt.Errorf("unable to decode audio: %w", err)
	}
	p.closers = append(p.closers, func() { p.streamer.Close() })
	p.Log.Infof("opened %v at %v", p.Args.Audio, p.format.SampleRate)

	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	p.clock = clock.NewStreamClock(p.streamer, p.format)
	return nil
}

// Run plays the chart until every note is done or the player quits.
func (p *Program) Run() error {
	cfg := p.Args.Config
	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer p.Renderer.Deinit()

	if sc, ok := p.clock.(*clock.StreamClock); ok {
		go func() {
			time.Sleep(cfg.Delay)
			speaker.Play(sc)
		}()
	}

	p.Renderer.RenderLoop(cfg.FramePeriod, func() bool {
		now := p.clock.Now()
		if !p.Update(now) {
			return false
		}
		p.Render(now)
		return true
	})
	return nil
}

// Update advances the session to now, then applies the inputs that arrived
// since the last frame at now. It returns false once play is over.
func (p *Program) Update(now time.Duration) bool {
	p.session.Advance(now)

	for {
		select {
		case ev := <-p.events:
			if ev.Quit {
				p.quit = true
				return false
			}
			if ev.Pressed {
				p.session.Press(ev.Lane, now)
			} else {
				p.session.Release(ev.Lane, now)
			}
		default:
			return !p.session.Done()
		}
	}
}

func (p *Program) Render(now time.Duration) {
	rows, cols := p.Renderer.Size()
	p.rows, p.middle = rows, cols/2

	p.field.Draw(p.Renderer, now, p.session.Active)

	sideCol := p.field.Column(p.middle, 1) - 36
	if sideCol < 2 {
		sideCol = 2
	}
	stats := p.session.Stats()
	pending, active, retired := p.session.Counts()

	p.Renderer.Fill(4, sideCol, fmt.Sprintf("       Time:  %8.2fs", now.Seconds()))
	p.Renderer.Fill(6, sideCol, fmt.Sprintf("      Combo:  %8v", stats.Combo))
	p.Renderer.Fill(7, sideCol, fmt.Sprintf(" Best combo:  %8v", stats.BestCombo))
	p.Renderer.Fill(8, sideCol, "       Last:  "+p.Theme.RenderQuality(stats.LastAccuracy))
	p.Renderer.Fill(10, sideCol, fmt.Sprintf("       Mean:  %8v", stats.Mean().Round(time.Microsecond)))
	p.Renderer.Fill(11, sideCol, fmt.Sprintf("      Stdev:  %8v", stats.Stdev().Round(time.Microsecond)))
	p.Renderer.Fill(12, sideCol, fmt.Sprintf("       Hits:  %8v", stats.TotalHits))
	p.Renderer.Fill(14, sideCol, fmt.Sprintf("      Notes:  %3v/%2v/%3v", pending, active, retired))
	for i := len(game.Qualities) - 1; i >= 0; i-- {
		q := game.Qualities[i]
		p.Renderer.Fill(16+len(game.Qualities)-1-i, sideCol, fmt.Sprintf("%v:  %8v", p.Theme.RenderQuality(q), stats.Counts[q]))
	}
}

// cue shows the outcome of a judgement around the lane it happened in.
func (p *Program) cue(f session.Feedback) {
	if p.rows == 0 {
		return
	}
	frames := int(cueDuration / p.Args.Config.FramePeriod)
	if frames < 1 {
		frames = 1
	}
	col := p.field.Column(p.middle, f.Lane)
	row := p.field.HitRow(p.rows)

	switch f.Cue {
	case session.CueMiss:
		p.Renderer.AddDecoration(row-1, col-1, "\033[1;31m╭", frames)
		p.Renderer.AddDecoration(row-1, col+1, "\033[1;31m╮", frames)
		p.Renderer.AddDecoration(row+1, col-1, "\033[1;31m╰", frames)
		p.Renderer.AddDecoration(row+1, col+1, "\033[1;31m╯\033[0m", frames)
	case session.CueTap, session.CueHoldPress, session.CueHoldRelease:
		p.Renderer.AddDecoration(row+2, col-3, p.Theme.RenderQuality(f.Quality), frames)
	}
}

// Summary writes the final judgement counts.
func (p *Program) Summary(w io.Writer) error {
	counts, err := p.journal.Counts()
	if nil != err {
		return err
	}
	stats := p.session.Stats()
	if p.quit {
		fmt.Fprintln(w, "Stopped early")
	}
	for i := len(game.Qualities) - 1; i >= 0; i-- {
		q := game.Qualities[i]
		fmt.Fprintf(w, "%8v: %v\n", q, counts[q])
	}
	fmt.Fprintf(w, "%8v: %v\n", "Combo", stats.BestCombo)
	fmt.Fprintf(w, "%8v: %v\n", "Mean", stats.Mean().Round(time.Microsecond))
	fmt.Fprintf(w, "%8v: %v\n", "Stdev", stats.Stdev().Round(time.Microsecond))
	return nil
}

func (p *Program) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
}
