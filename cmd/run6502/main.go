// Command run6502 is a small host for the cpu package: it loads a program
// into a flat memory bus, resets a CPU onto it, runs to completion or a
// cycle budget, and prints a post-mortem dump.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/glouw/run6502/config"
	"github.com/glouw/run6502/cpu"
	"github.com/glouw/run6502/debugger"
	"github.com/glouw/run6502/disasm"
	"github.com/glouw/run6502/loader"
	"github.com/glouw/run6502/log"
	"github.com/glouw/run6502/memio"
)

func main() {
	cli := parseArgs(os.Args[1:])
	log.Enable(cli.LogModule...)

	cfg, err := config.Load(cli.Config)
	checkf(err, "failed to load configuration")
	if cli.Cycles != 0 {
		cfg.Run.CycleBudget = cli.Cycles
	}

	bus := memio.NewBus()
	bus.MapRAM(0, cfg.Memory.RAMEnd, false)

	data, err := os.ReadFile(cli.Program)
	checkf(err, "failed to read program")

	var img *loader.Image
	if cli.Raw {
		img = loader.LoadRaw(data, cli.LoadAt)
	} else {
		img, err = loader.ParseDump(string(data))
		checkf(err, "failed to parse program")
	}
	img.WriteTo(bus)

	c := cpu.New(bus)
	c.Reset(cli.LoadAt)

	var dbg *debugger.Debugger
	if cli.Debug != "" {
		dbg = debugger.New(c)
		closer, err := debugger.Serve(cli.Debug, dbg)
		checkf(err, "failed to start debugger server")
		defer closer.Close()
	}

	if cli.Trace != nil {
		installTracer(c, cli.Trace, bus)
		defer cli.Trace.Close()
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		runToCompletion(c, bus, cfg.Run)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		if dbg != nil {
			dbg.Pause()
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		fatalf("run failed: %s", err)
	}

	dumpState(os.Stdout, c, bus)
}

// runToCompletion drives the CPU one instruction at a time so it can
// observe the RTS/SP==0xFF completion convention: the core never
// implements this itself, only the host does. It returns the number of
// cycles elapsed.
func runToCompletion(c *cpu.CPU, bus cpu.Bus, cfg config.RunConfig) int64 {
	var elapsed, budget int64 = 0, cfg.CycleBudget
	for !c.Halted {
		opcode := bus.Read(c.PC)
		cycles := int64(c.Step())
		elapsed += cycles

		if opcode == 0x60 && c.SP == 0xFF {
			log.ModHost.Infof("RTS unwound the stack at $%04X: program complete", c.PC)
			break
		}

		if budget > 0 {
			if cfg.ByCycles {
				budget -= cycles
			} else {
				budget--
			}
			if budget <= 0 {
				log.ModHost.Infof("cycle budget exhausted at $%04X", c.PC)
				break
			}
		}
	}
	return elapsed
}

func installTracer(c *cpu.CPU, w io.Writer, bus cpu.Bus) {
	prev := c.Trace
	c.Trace = func(pc uint16, opcode uint8) {
		if prev != nil {
			prev(pc, opcode)
		}
		text, _ := disasm.Line(bus, pc)
		fmt.Fprintf(w, "%04X  %-20s A:%02X X:%02X Y:%02X P:%s SP:%02X\n",
			pc, text, c.A, c.X, c.Y, c.P, c.SP)
	}
}
