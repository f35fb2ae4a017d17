package session

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/journal"
	"git.lost.host/meutraa/lanes/internal/log"
	"git.lost.host/meutraa/lanes/internal/schedule"
	"git.lost.host/meutraa/lanes/internal/score"
)

type Config struct {
	Lookahead  time.Duration
	MissGrace  time.Duration
	Judgements []game.Judgement
}

// Recorder receives every input and judgment of a session.
type Recorder interface {
	Record(e journal.Entry) error
	RecordInput(in game.Input) error
}

type Option func(s *Session)

func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

func WithCue(fn func(Feedback)) Option {
	return func(s *Session) { s.onCue = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session owns the note and score state of one play through a chart. It
// is not safe for concurrent use: ticks and inputs must come from one
// goroutine.
type Session struct {
	chart     *game.Chart
	scheduler *schedule.Scheduler
	scorer    score.Scorer
	tracker   score.Tracker

	recorder Recorder
	onCue    func(Feedback)
	log      *log.Logger
}

func New(chart *game.Chart, cfg Config, opts ...Option) *Session {
	s := &Session{
		chart:     chart,
		scheduler: schedule.New(chart, cfg.Lookahead, cfg.MissGrace),
		scorer:    &score.DefaultScorer{Judgements: cfg.Judgements},
		tracker:   score.NewTracker(),
		log:       log.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Chart() *game.Chart {
	return s.chart
}

// Advance moves the session clock to now, activating and expiring notes.
func (s *Session) Advance(now time.Duration) {
	s.scheduler.Advance(now, func(n *game.Note, kind game.InputKind) {
		s.tracker.Record(game.Miss, 0)
		s.log.Debugf("expired lane %d note %d (%v) %v", n.Lane, n.Seq, n.Start, kind)
		s.record(journal.Entry{At: s.scheduler.Now(), Lane: n.Lane, Kind: journal.KindExpire, Quality: game.Miss, Seq: n.Seq})
		s.emit(Feedback{Cue: CueMiss, Lane: n.Lane, Quality: game.Miss, Combo: 0, Note: n})
	})
}

// Press judges a press of lane at now.
func (s *Session) Press(lane int, now time.Duration) Feedback {
	s.recordInput(game.Input{Lane: lane, Kind: game.Press, Time: now})

	note, q := s.scorer.ApplyPress(s.scheduler.Active(), lane, now)
	if nil == note {
		return s.emit(Feedback{Cue: CueFree, Lane: lane, Quality: game.None, Combo: s.tracker.Combo})
	}

	offset := s.scorer.Distance(note.Start, now)
	s.tracker.Record(q, offset)

	cue := CueIgnored
	switch {
	case q == game.Miss:
		cue = CueMiss
	case q.Hit() && note.IsHeld():
		cue = CueHoldPress
	case q.Hit():
		cue = CueTap
	}
	if q != game.None {
		s.record(journal.Entry{At: now, Lane: lane, Kind: journal.KindPress, Quality: q, Offset: offset, Seq: note.Seq})
	}
	return s.emit(Feedback{Cue: cue, Lane: lane, Quality: q, Combo: s.tracker.Combo, Note: note})
}

// Release judges a release of lane at now.
func (s *Session) Release(lane int, now time.Duration) Feedback {
	s.recordInput(game.Input{Lane: lane, Kind: game.Release, Time: now})

	note, q := s.scorer.ApplyRelease(s.scheduler.Active(), lane, now)
	if nil == note {
		return s.emit(Feedback{Cue: CueRelease, Lane: lane, Quality: game.None, Combo: s.tracker.Combo})
	}

	offset := s.scorer.Distance(note.End, now)
	s.tracker.Record(q, offset)

	cue := CueHoldRelease
	if q == game.Miss {
		cue = CueMiss
	}
	s.record(journal.Entry{At: now, Lane: lane, Kind: journal.KindRelease, Quality: q, Offset: offset, Seq: note.Seq})
	return s.emit(Feedback{Cue: cue, Lane: lane, Quality: q, Combo: s.tracker.Combo, Note: note})
}

// Apply dispatches an input to Press or Release.
func (s *Session) Apply(in game.Input) Feedback {
	if in.Kind == game.Release {
		return s.Release(in.Lane, in.Time)
	}
	return s.Press(in.Lane, in.Time)
}

// Active calls fn for every note in the active set. The notes must be
// treated as read only.
func (s *Session) Active(fn func(n *game.Note)) {
	s.scheduler.Active().Each(fn)
}

// Stats returns a copy of the score tracker.
func (s *Session) Stats() score.Tracker {
	return s.tracker
}

func (s *Session) Now() time.Duration {
	return s.scheduler.Now()
}

// Counts returns the sizes of the pending, active and retired populations.
func (s *Session) Counts() (pending, active, retired int) {
	return s.scheduler.Pending(), s.scheduler.Active().Len(), s.scheduler.Retired()
}

// Done reports whether every note has been judged or expired and retired.
func (s *Session) Done() bool {
	return s.scheduler.Done()
}

func (s *Session) emit(f Feedback) Feedback {
	if nil != s.onCue {
		s.onCue(f)
	}
	return f
}

func (s *Session) record(e journal.Entry) {
	if nil == s.recorder {
		return
	}
	if err := s.recorder.Record(e); nil != err {
		s.log.Errorf("%v", err)
	}
}

func (s *Session) recordInput(in game.Input) {
	if nil == s.recorder {
		return
	}
	if err := s.recorder.RecordInput(in); nil != err {
		s.log.Errorf("%v", err)
	}
}
