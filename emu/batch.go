package emu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"spcplay/emu/log"
	"spcplay/spc"
)

type RenderOptions struct {
	OutDir     string
	SampleRate int

	// Overrides the song length when non zero.
	Duration  time.Duration
	Emulation EmulationConfig
}

// RenderFiles renders each SPC file to a WAV file in opts.OutDir,
// concurrently. It returns the paths of the created files, in the order of
// paths. The first error cancels the remaining renders.
func RenderFiles(ctx context.Context, paths []string, opts RenderOptions) ([]string, error) {
	outs := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			out, err := RenderFile(ctx, path, opts)
			if err != nil {
				return err
			}
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outs, nil
}

// RenderFile renders a single SPC file to a WAV file and returns its path.
// The WAV file is removed if rendering fails or is canceled.
func RenderFile(ctx context.Context, path string, opts RenderOptions) (_ string, err error) {
	f, err := spc.Open(path)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".wav"
	outpath := filepath.Join(opts.OutDir, name)
	fd, err := os.Create(outpath)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := fd.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%s: %w", outpath, cerr)
		}
		if err != nil {
			os.Remove(outpath)
		}
	}()

	ww, err := NewWAVWriter(fd, opts.SampleRate)
	if err != nil {
		return "", fmt.Errorf("%s: %w", outpath, err)
	}

	popts := PlayerOptionsFor(f, opts.Emulation)
	if opts.Duration > 0 {
		popts.Duration = opts.Duration
		popts.Fade = 0
	}

	p := NewPlayer(f.State(), ww, popts)
	stop := context.AfterFunc(ctx, p.Stop)
	defer stop()

	if err := p.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ww.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", outpath, err)
	}

	log.ModEmu.InfoZ("Rendered").String("spc", path).String("wav", outpath).End()
	return outpath, nil
}
