package webserver

import (
	"github.com/psidex/worldlines/internal/globe"
	"github.com/psidex/worldlines/internal/lib"
)

type SessionConfig struct {
	globe.Config
	Runtime lib.Duration `json:"runtime"`
	// Cities overrides the built-in dataset when non-empty.
	Cities []globe.City `json:"cities"`
}
