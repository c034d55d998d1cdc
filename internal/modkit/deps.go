// Package modkit wires API modules together over shared deps
package modkit

import (
	"scrollpress/internal/modkit/repokit"
	"scrollpress/internal/platform/config"
	"scrollpress/internal/platform/logger"
)

// Deps is the shared dependency bundle every module receives
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// ZeroOK reports that a zero Deps is usable in tests; optional seams
// still need nil checks
func (d Deps) ZeroOK() bool { return true }
