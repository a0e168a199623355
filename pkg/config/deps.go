package config

import (
	"log/slog"

	"github.com/amirasaad/responsibility/pkg/chain"
)

// Deps holds the dependencies the CLI needs to dispatch a request.
type Deps struct {
	Chain  *chain.Chain
	Logger *slog.Logger
	Config *App
}
