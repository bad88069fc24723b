package wire

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/mithrel/mdref/internal/config"
)

// App aggregates what every subcommand needs: validated configuration and
// a logger for operational messages.
type App struct {
	Cfg *viper.Viper
	Log *log.Logger
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	logger := log.New(os.Stderr, "mdref ", log.LstdFlags)
	return &App{Cfg: v, Log: logger}, nil
}
