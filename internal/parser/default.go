package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Line markers
//  @: Tap note
//  +: Hold head, the next line is its tail
//  -: Hold tail (any marker is accepted on the tail line)
const (
	TapMarker  = "@"
	HoldMarker = "+"
	TailMarker = "-"
)

type DefaultParser struct {
	// Offset is added to every timestamp in the chart
	Offset time.Duration
}

type line struct {
	number int
	text   string
	lane   int
	marker string
	time   time.Duration
}

func (p *DefaultParser) ParseFile(file string) (*game.Chart, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, fmt.Errorf("unable to open chart: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

func (p *DefaultParser) Parse(r io.Reader) (*game.Chart, error) {
	scanner := bufio.NewScanner(r)
	notes := []*game.Note{}
	number := 0

	next := func() (*line, error) {
		for scanner.Scan() {
			number++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			return p.parseLine(number, text)
		}
		return nil, scanner.Err()
	}

	for {
		l, err := next()
		if nil != err {
			return nil, err
		}
		if nil == l {
			break
		}

		switch l.marker {
		case TapMarker:
			notes = append(notes, game.NewNote(l.lane, l.time, l.time))
		case HoldMarker:
			tail, err := next()
			if nil != err {
				return nil, err
			}
			if nil == tail {
				return nil, &ChartFormatError{Line: l.number, Text: l.text, Reason: "hold has no end line"}
			}
			if tail.time < l.time {
				return nil, &ChartFormatError{Line: tail.number, Text: tail.text, Reason: "hold ends before it starts"}
			}
			notes = append(notes, game.NewNote(l.lane, l.time, tail.time))
		default:
			return nil, &ChartFormatError{Line: l.number, Text: l.text, Reason: "unexpected marker " + strconv.Quote(l.marker)}
		}
	}

	// Authored order interleaves holds with taps, so order by start time
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Start < notes[j].Start
	})

	return game.NewChart(notes), nil
}

func (p *DefaultParser) parseLine(number int, text string) (*line, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return nil, &ChartFormatError{Line: number, Text: text, Reason: fmt.Sprintf("expected 3 fields, got %d", len(fields))}
	}

	lane, err := strconv.Atoi(fields[0])
	if nil != err {
		return nil, &ChartFormatError{Line: number, Text: text, Reason: "lane is not an integer", Err: err}
	}
	if lane < 1 {
		return nil, &ChartFormatError{Line: number, Text: text, Reason: "lane must be positive"}
	}

	seconds, err := strconv.ParseFloat(fields[2], 64)
	if nil != err {
		return nil, &ChartFormatError{Line: number, Text: text, Reason: "time is not a number", Err: err}
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return nil, &ChartFormatError{Line: number, Text: text, Reason: "time is not finite"}
	}

	return &line{
		number: number,
		text:   text,
		lane:   lane,
		marker: fields[1],
		time:   Seconds(seconds) + p.Offset,
	}, nil
}

// Seconds converts a decimal seconds value to a duration, rounded to the
// nearest nanosecond.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
