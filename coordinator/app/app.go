package app

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/egkv/egkv/coordinator"
	"github.com/egkv/egkv/coordinator/provider"
	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/egkvlog"
	protos "github.com/egkv/egkv/pkg/protos"
)

type App struct {
	coordinator coordinator.Coordinator
}

func NewApp(c coordinator.Coordinator) *App {
	return &App{
		coordinator: c,
	}
}

// Run serves the location API on the configured address until ctx is done.
func (app *App) Run(ctx context.Context) error {
	egkvlog.Zero.Info().Msg("running coordinator app")

	address := net.JoinHostPort(config.CoordinatorConfig().Host, config.CoordinatorConfig().GrpcApiPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		egkvlog.Zero.Error().
			Err(err).
			Msg("error serve grpc coordinator service")
		return err
	}

	egkvlog.Zero.Info().
		Str("address", address).
		Msg("serve grpc coordinator service")

	return app.Serve(ctx, listener)
}

// Serve runs the location API on listener until ctx is done.
func (app *App) Serve(ctx context.Context, listener net.Listener) error {
	serv := grpc.NewServer()
	protos.RegisterLocationServiceServer(serv, provider.NewLocationService(app.coordinator))

	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			serv.GracefulStop()
		case <-stopped:
		}
	}()
	defer close(stopped)

	err := serv.Serve(listener)
	egkvlog.Zero.Debug().Err(err).Msg("exit coordinator app")
	if ctx.Err() != nil {
		return nil
	}
	return err
}
