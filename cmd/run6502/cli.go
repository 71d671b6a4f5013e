package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Program string `arg:"" name:"program" help:"Hex-dump or raw binary program to load." type:"existingfile"`

	Raw       bool     `name:"raw" help:"Treat program as a raw binary instead of the hex-dump format."`
	LoadAt    uint16   `name:"load-at" help:"Load address for a raw binary; also written to the reset vector as the start address for either format." default:"0x0600"`
	Config    string   `name:"config" help:"Path to a TOML configuration file." type:"path" default:"run6502.toml"`
	Cycles    int64    `name:"cycles" help:"Cycle budget for the run (0 = unbounded)."`
	Debug     string   `name:"debug" help:"Address to serve the debugger rpc server on (e.g. localhost:6502)."`
	Trace     *outfile `name:"trace" help:"Write a disassembly trace." placeholder:"FILE|stdout|stderr"`
	LogModule []string `name:"log" help:"Enable debug logging for the named module(s)." placeholder:"mod0,mod1,..."`
}

var vars = kong.Vars{
	"description": "Load a 6502 program, run it to completion or budget, print a post-mortem dump.",
}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("run6502"),
		kong.Description("6502 fetch-decode-execute interpreter host. github.com/glouw/run6502"),
		kong.UsageOnError(),
		vars)
	checkf(err, "failed to build cli parser")

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")
	return cli
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}

type outfile struct {
	w    io.Writer
	name string
}

// Decode implements kong.MapperValue, turning a FILE|stdout|stderr flag
// value into an io.WriteCloser.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	name, ok := tok.Value.(string)
	if !ok {
		return fmt.Errorf("expected a string, got %v", tok.Value)
	}
	f.name = name

	switch name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(name)
		if err != nil {
			return err
		}
		f.w = fd
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error {
	if f.name == "stdout" || f.name == "stderr" || f.name == "" {
		return nil
	}
	return f.w.(io.Closer).Close()
}
