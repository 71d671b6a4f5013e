package debugger

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/rpc"

	"github.com/glouw/run6502/log"
)

// BreakpointRequest is the argument to the "debugger.SetBreakpoint" RPC.
type BreakpointRequest struct {
	Addr uint16
	On   bool
}

type rpcProxy struct {
	dbg *Debugger
}

func (p *rpcProxy) Continue(_ struct{}, _ *struct{}) error {
	p.dbg.Continue()
	return nil
}

func (p *rpcProxy) Step(_ struct{}, pc *uint16) error {
	*pc = p.dbg.Step()
	return nil
}

func (p *rpcProxy) Pause(_ struct{}, _ *struct{}) error {
	p.dbg.Pause()
	return nil
}

func (p *rpcProxy) SetBreakpoint(req BreakpointRequest, _ *struct{}) error {
	p.dbg.SetBreakpoint(req.Addr, req.On)
	return nil
}

func (p *rpcProxy) CallStack(_ struct{}, out *[]Frame) error {
	*out = p.dbg.CallStack()
	return nil
}

// Serve starts a net/rpc-over-HTTP remote control server for dbg, listening
// on addr. The returned io.Closer stops the listener.
func Serve(addr string, dbg *Debugger) (io.Closer, error) {
	server := rpc.NewServer()
	if err := server.RegisterName("debugger", &rpcProxy{dbg: dbg}); err != nil {
		return nil, fmt.Errorf("debugger: register rpc service: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, server)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("debugger: listen on %s: %w", addr, err)
	}

	go http.Serve(ln, mux)
	log.ModDebugger.Infof("debugger rpc server listening on %s", addr)
	return ln, nil
}
