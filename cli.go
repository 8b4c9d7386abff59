package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"spcplay/emu/log"
)

type mode byte

const (
	playMode    mode = iota // Play an SPC file
	renderMode              // Render SPC files to WAV
	infoMode                // Show SPC file infos
	versionMode             // Show spcplay version
)

type (
	CLI struct {
		Play    Play    `cmd:"" help:"Play an SPC file."`
		Render  Render  `cmd:"" help:"Render SPC files to WAV files."`
		Info    Info    `cmd:"" help:"Show SPC file infos."`
		Version Version `cmd:"" help:"Show spcplay version."`

		Log        logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		CPUProfile string     `name:"cpuprofile" help:"${cpuprofile_help}" type:"path"`

		mode mode
	}

	Play struct {
		SPCPath string `arg:"" name:"/path/to/spc" help:"SPC file to play." type:"existingfile"`

		Seconds          int    `name:"seconds" help:"${seconds_help}"`
		Backend          string `name:"backend" help:"Audio backend, overrides the configuration (sdl or oto)."`
		AllowUnsupported bool   `name:"allow-unsupported" help:"${unsupported_help}"`
	}

	Render struct {
		SPCPaths []string `arg:"" name:"/path/to/spc" help:"SPC files to render." type:"existingfile"`

		Out              string `name:"out" short:"o" help:"Output directory." type:"existingdir" default:"."`
		Seconds          int    `name:"seconds" help:"${seconds_help}"`
		Rate             int    `name:"rate" help:"Sample rate of the WAV files." default:"32000"`
		AllowUnsupported bool   `name:"allow-unsupported" help:"${unsupported_help}"`
	}

	Info struct {
		SPCPath string `arg:"" name:"/path/to/spc" type:"existingfile"`

		JSON bool `name:"json" help:"Print infos as JSON."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"cpuprofile_help":  "Write CPU profile to file.",
	"log_help":         "Enable logging for specified modules.",
	"seconds_help":     "Play time in seconds, overrides the length found in the SPC file.",
	"unsupported_help": "Keep playing songs using unemulated DSP features.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("spcplay"),
		kong.Description("SNES SPC music player."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch strings.Fields(ctx.Command())[0] {
	case "render":
		cfg.mode = renderMode
	case "info":
		cfg.mode = infoMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = playMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if ctx.Command() == "" {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n\t"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
