package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-faster/jx"

	"spcplay/hw/snapshot"
	"spcplay/spc"
)

// infoMain prints the tag and the initial CPU registers of an SPC file.
func infoMain(w io.Writer, args Info) error {
	f, err := spc.Open(args.SPCPath)
	if err != nil {
		return err
	}

	if args.JSON {
		var e jx.Encoder
		encodeInfos(&e, f)
		_, err := w.Write(append(e.Bytes(), '\n'))
		return err
	}
	return printInfos(w, f)
}

func printInfos(w io.Writer, f *spc.File) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	tag := &f.Tag
	fmt.Fprintf(tw, "Song:\t%s\n", tag.Song)
	fmt.Fprintf(tw, "Game:\t%s\n", tag.Game)
	fmt.Fprintf(tw, "Author:\t%s\n", tag.Author)
	fmt.Fprintf(tw, "Dumper:\t%s\n", tag.Dumper)
	fmt.Fprintf(tw, "Date:\t%s\n", tag.Date)
	fmt.Fprintf(tw, "Comments:\t%s\n", tag.Comments)
	fmt.Fprintf(tw, "Length:\t%s\n", tag.Length)
	fmt.Fprintf(tw, "Fade:\t%s\n", tag.Fade)
	fmt.Fprintf(tw, "Muted voices:\t%08b\n", tag.Muted)

	s := f.State()
	fmt.Fprintf(tw, "PC:\t$%04X\n", s.PC)
	fmt.Fprintf(tw, "A X Y SP PSW:\t$%02X $%02X $%02X $%02X $%02X\n", s.A, s.X, s.Y, s.SP, s.PSW)
	fmt.Fprintf(tw, "Sample directory:\t$%04X\n", sampleDir(s))
	return tw.Flush()
}

func encodeInfos(e *jx.Encoder, f *spc.File) {
	tag := &f.Tag
	s := f.State()

	e.ObjStart()
	e.FieldStart("song")
	e.Str(tag.Song)
	e.FieldStart("game")
	e.Str(tag.Game)
	e.FieldStart("author")
	e.Str(tag.Author)
	e.FieldStart("dumper")
	e.Str(tag.Dumper)
	e.FieldStart("date")
	e.Str(tag.Date)
	e.FieldStart("comments")
	e.Str(tag.Comments)
	e.FieldStart("length_ms")
	e.Int64(tag.Length.Milliseconds())
	e.FieldStart("fade_ms")
	e.Int64(tag.Fade.Milliseconds())
	e.FieldStart("muted")
	e.Int(int(tag.Muted))

	e.FieldStart("cpu")
	e.ObjStart()
	e.FieldStart("pc")
	e.Int(int(s.PC))
	e.FieldStart("a")
	e.Int(int(s.A))
	e.FieldStart("x")
	e.Int(int(s.X))
	e.FieldStart("y")
	e.Int(int(s.Y))
	e.FieldStart("sp")
	e.Int(int(s.SP))
	e.FieldStart("psw")
	e.Int(int(s.PSW))
	e.ObjEnd()

	e.FieldStart("dir")
	e.Int(int(sampleDir(s)))
	e.ObjEnd()
}

// DIR register.
const dspDIR = 0x5D

func sampleDir(s *snapshot.State) uint16 {
	return uint16(s.DSP[dspDIR]) << 8
}
