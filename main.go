package main

import (
	"fmt"
	"io"
	"os"

	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/convert"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/log"
	"git.lost.host/meutraa/lanes/internal/parser"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(argv []string, stdout io.Writer) error {
	args, err := config.NewCLI().Parse(argv)
	if nil != err {
		return err
	}

	logger, closeLog, err := openLog(args)
	if nil != err {
		return err
	}
	defer closeLog()

	switch args.Command {
	case config.CheckCommand:
		return check(args, stdout)
	case config.ConvertCommand:
		return convertMIDI(args, stdout)
	default:
		return play(args, logger, stdout)
	}
}

func openLog(args *config.Args) (*log.Logger, func(), error) {
	if args.LogFile == "" {
		return log.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(args.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	return log.New(f, args.LogLevel), func() { f.Close() }, nil
}

func play(args *config.Args, logger *log.Logger, stdout io.Writer) error {
	p := &Program{Args: args, Log: logger}
	defer p.Close()

	if err := p.Init(); nil != err {
		return err
	}
	if err := p.Run(); nil != err {
		return err
	}
	return p.Summary(stdout)
}

func check(args *config.Args, stdout io.Writer) error {
	psr := &parser.DefaultParser{Offset: args.Config.ChartOffset}
	chart, err := psr.ParseFile(args.Chart)
	if nil != err {
		return err
	}
	printChart(stdout, chart)
	return nil
}

func printChart(w io.Writer, chart *game.Chart) {
	first, last := chart.Span()
	fmt.Fprintf(w, "%8v: %v\n", "Notes", len(chart.Notes))
	fmt.Fprintf(w, "%8v: %v\n", "Taps", chart.TapCount)
	fmt.Fprintf(w, "%8v: %v\n", "Holds", chart.HoldCount)
	fmt.Fprintf(w, "%8v: %v\n", "Lanes", chart.Lanes)
	fmt.Fprintf(w, "%8v: %v - %v\n", "Span", first, last)
}

func convertMIDI(args *config.Args, stdout io.Writer) error {
	f, err := os.Open(args.Midi)
	if nil != err {
		return fmt.Errorf("unable to open midi: %w", err)
	}
	defer f.Close()

	chart, err := convert.FromMIDI(f, convert.Mapping{TapKey: args.TapKey, HoldKey: args.HoldKey})
	if nil != err {
		return err
	}

	if args.Output == "" {
		return parser.Encode(stdout, chart, args.Config.ChartOffset)
	}
	out, err := os.Create(args.Output)
	if nil != err {
		return fmt.Errorf("unable to create chart: %w", err)
	}
	if err := parser.Encode(out, chart, args.Config.ChartOffset); nil != err {
		out.Close()
		return err
	}
	return out.Close()
}
