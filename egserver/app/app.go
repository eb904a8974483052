package app

import (
	"context"
	"errors"
	"net"
	"time"

	retry "github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/egkv/egkv/egserver/provider"
	"github.com/egkv/egkv/egserver/scanner"
	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/router/grpcclient"
)

type App struct {
	cfg     config.Server
	srv     *provider.Server
	sweeper *scanner.Sweeper
}

func NewApp(cfg config.Server) *App {
	cfg.ApplyDefaults()

	scanners := scanner.NewTable(scanner.Config{
		LeaseDuration: cfg.ScannerLeaseDuration,
		MaxBatch:      cfg.MaxScanBatch,
	})
	return &App{
		cfg:     cfg,
		srv:     provider.NewServer(cfg.ServerID, scanners),
		sweeper: scanner.NewSweeper(scanners, cfg.SweeperInterval),
	}
}

func (app *App) Server() *provider.Server {
	return app.srv
}

// Run listens on the configured address, registers with the coordinator
// and serves until ctx is done.
func (app *App) Run(ctx context.Context) error {
	egkvlog.Zero.Info().Str("server", app.cfg.ServerID).Msg("running entity group server app")

	address := net.JoinHostPort(app.cfg.Host, app.cfg.GrpcApiPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		egkvlog.Zero.Error().
			Err(err).
			Msg("error serve grpc entity group service")
		return err
	}
	egkvlog.Zero.Info().
		Str("address", address).
		Msg("serve grpc entity group service")

	var coordinator protos.LocationServiceClient
	if app.cfg.CoordinatorAddr != "" {
		cc, err := grpcclient.Dial(app.cfg.CoordinatorAddr)
		if err != nil {
			return err
		}
		defer cc.Close()
		coordinator = protos.NewLocationServiceClient(cc)
	}

	return app.Serve(ctx, listener, coordinator)
}

// Serve runs the sweeper and the gRPC services on listener until ctx is
// done, then closes every scanner. A nil coordinator skips registration.
func (app *App) Serve(ctx context.Context, listener net.Listener, coordinator protos.LocationServiceClient) error {
	serv := grpc.NewServer()
	protos.RegisterEntityGroupServiceServer(serv, provider.NewEntityGroupService(app.srv))
	protos.RegisterServerAdminServiceServer(serv, provider.NewAdminService(app.srv))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.sweeper.Run(gctx)
		return nil
	})
	g.Go(func() error {
		if err := serv.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		serv.GracefulStop()
		app.srv.Shutdown()
		egkvlog.Zero.Info().Str("server", app.cfg.ServerID).Msg("entity group server stopped")
		return nil
	})
	if coordinator != nil {
		g.Go(func() error {
			if err := app.register(gctx, coordinator); err != nil && gctx.Err() == nil {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

func (app *App) register(ctx context.Context, coordinator protos.LocationServiceClient) error {
	b := retry.WithMaxRetries(10, retry.NewFibonacci(100*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		_, err := coordinator.RegisterServer(ctx, &protos.RegisterServerRequest{
			Server: &protos.ServerInfo{
				Id:      app.cfg.ServerID,
				Address: app.cfg.AdvertiseAddr,
			},
		})
		if err == nil {
			return nil
		}
		err = egerror.FromGRPC(err)
		egkvlog.Zero.Warn().Err(err).Str("coordinator", app.cfg.CoordinatorAddr).Msg("server app: registration failed")
		if egerror.Retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return err
	}

	egkvlog.Zero.Info().
		Str("server", app.cfg.ServerID).
		Str("address", app.cfg.AdvertiseAddr).
		Msg("server app: registered with coordinator")
	return nil
}
