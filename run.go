package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"spcplay/emu"
	"spcplay/emu/log"
	"spcplay/spc"
)

// playMain plays an SPC file on the audio device until the end of the song
// or an interrupt.
func playMain(args Play, cfg emu.Config) error {
	f, err := spc.Open(args.SPCPath)
	if err != nil {
		return err
	}

	if args.Backend != "" {
		cfg.Audio.Backend = args.Backend
		cfg.Check()
	}
	if args.AllowUnsupported {
		cfg.Emulation.AllowUnsupported = true
	}

	opts := emu.PlayerOptionsFor(f, cfg.Emulation)
	if args.Seconds > 0 {
		opts.Duration = time.Duration(args.Seconds) * time.Second
		opts.Fade = 0
	}

	out, err := emu.NewOutput(cfg.Audio)
	if err != nil {
		return err
	}

	p := emu.NewPlayer(f.State(), out, opts)
	defer log.AddContext(p.APU)()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	context.AfterFunc(ctx, p.Stop)

	printSummary(os.Stdout, f, opts)
	err = p.Run()
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func printSummary(w io.Writer, f *spc.File, opts emu.PlayerOptions) {
	title := f.Tag.Song
	if title == "" {
		title = "(untitled)"
	}
	if f.Tag.Game != "" {
		title += " - " + f.Tag.Game
	}
	fmt.Fprintf(w, "Playing %s [%s]\n", title, opts.Duration+opts.Fade)
}

// renderMain renders SPC files to WAV files.
func renderMain(args Render, cfg emu.Config) error {
	if args.Rate < emu.MinSampleRate || args.Rate > emu.MaxSampleRate {
		return fmt.Errorf("sample rate must be between %d and %d", emu.MinSampleRate, emu.MaxSampleRate)
	}
	if args.AllowUnsupported {
		cfg.Emulation.AllowUnsupported = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outs, err := emu.RenderFiles(ctx, args.SPCPaths, emu.RenderOptions{
		OutDir:     args.Out,
		SampleRate: args.Rate,
		Duration:   time.Duration(args.Seconds) * time.Second,
		Emulation:  cfg.Emulation,
	})
	if err != nil {
		return err
	}
	for _, out := range outs {
		fmt.Println(out)
	}
	return nil
}
