// Package wiring registers every Graft node for kiln. Importing it for
// side effects (as cmd/kiln/main.go does) is what makes
// graft.ExecuteFor[*app.Components] resolvable.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kiln/internal/adapters/config"
	_ "go.trai.ch/kiln/internal/adapters/fs"
	_ "go.trai.ch/kiln/internal/adapters/logger"
	_ "go.trai.ch/kiln/internal/adapters/shell"
	_ "go.trai.ch/kiln/internal/adapters/telemetry"
	_ "go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	// Register core/engine nodes.
	_ "go.trai.ch/kiln/internal/app"
	_ "go.trai.ch/kiln/internal/build"
	_ "go.trai.ch/kiln/internal/core/domain"
	_ "go.trai.ch/kiln/internal/testgen"
)
