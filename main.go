package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"runtime/pprof"

	"spcplay/emu"
)

func main() {
	cli := parseArgs(os.Args[1:])

	if cli.CPUProfile != "" {
		defer startCPUProfile(cli.CPUProfile)()
	}

	switch cli.mode {
	case playMode:
		cfg := emu.LoadConfigOrDefault()
		checkf(playMain(cli.Play, cfg), "failed to play %s", cli.Play.SPCPath)
	case renderMode:
		cfg := emu.LoadConfigOrDefault()
		checkf(renderMain(cli.Render, cfg), "failed to render")
	case infoMode:
		checkf(infoMain(os.Stdout, cli.Info), "failed to show infos")
	case versionMode:
		printVersion()
	}
}

func startCPUProfile(path string) (stop func()) {
	f, err := os.Create(path)
	checkf(err, "failed to create cpu profile file")
	checkf(pprof.StartCPUProfile(f), "failed to start cpu profile")
	return func() {
		pprof.StopCPUProfile()
		f.Close()
		fmt.Println("CPU profile written to", path)
	}
}

func printVersion() {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Println("spcplay", version)
}
