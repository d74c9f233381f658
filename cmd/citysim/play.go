package main

import (
	"github.com/napolitain/citysim/internal/engine"
	"github.com/napolitain/citysim/internal/tui"
)

func playInteractive(game *engine.Game) error {
	return tui.Run(game)
}
