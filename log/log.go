// Package log is a thin, module-scoped wrapper around logrus, in the same
// spirit as the host's own log package: callers log through a Module value
// rather than a shared global logger, and a module can be independently
// enabled or silenced.
package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

type Module uint

const (
	ModCPU Module = iota
	ModBus
	ModLoader
	ModDebugger
	ModHost

	modCount
)

var modNames = [...]string{"cpu", "bus", "loader", "debugger", "host"}

func (m Module) String() string {
	if int(m) < len(modNames) {
		return modNames[m]
	}
	return "?"
}

var enabled [modCount]bool

// Enable turns on debug-level logging for the named modules. Modules not
// named here still log at Info level and above.
func Enable(names ...string) {
	for _, name := range names {
		for m, n := range modNames {
			if n == name {
				enabled[m] = true
				logrus.SetLevel(logrus.DebugLevel)
			}
		}
	}
}

func (m Module) entry() *logrus.Entry {
	return logrus.StandardLogger().WithField("mod", m.String())
}

func (m Module) Debugf(format string, args ...any) {
	if enabled[m] {
		m.entry().Debugf(format, args...)
	}
}

func (m Module) Infof(format string, args ...any)  { m.entry().Infof(format, args...) }
func (m Module) Warnf(format string, args ...any)  { m.entry().Warnf(format, args...) }
func (m Module) Errorf(format string, args ...any) { m.entry().Errorf(format, args...) }
func (m Module) Fatalf(format string, args ...any) { m.entry().Fatalf(format, args...) }
