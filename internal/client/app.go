package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type App struct {
	services *service.ClientServices
	workers  config.ClientWorkers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}

	return &App{
		services: services,
		workers:  workersCfg,
		logger:   logger,
	}, nil
}

// Run starts the client runtime: unlock the wallet, run the first
// synchronization pass, attempt the device-share migration, then keep
// synchronizing in the background until the process is stopped.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	wallet, err := promptWallet(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("read wallet credentials: %w", err)
	}
	a.services.WalletSession.SetUserWallet(wallet)

	if _, err = a.services.MetadataService.Synchronize(ctx); err != nil {
		// the first pass may fail when every remote is down; the background
		// job keeps retrying
		a.logger.Warn().Err(err).Msg("initial synchronization failed")
	}

	if err = a.services.MigrationService.Migrate(ctx); err != nil && !errors.Is(err, service.ErrMigrationUnavailable) {
		a.logger.Warn().Err(err).Msg("device share migration failed")
	}

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	go a.watchState(ctx)

	<-ctx.Done()
	a.logger.Info().Msg("client shutdown")

	return nil
}

// watchState logs every published synchronization state transition.
func (a *App) watchState(ctx context.Context) {
	states := a.services.MetadataService.Subscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case state := <-states:
			event := a.logger.Debug().Str("status", string(state.Status))
			if state.Err != nil {
				event = a.logger.Warn().Err(state.Err).Str("status", string(state.Status))
			}
			event.Msg("synchronization state changed")
		}
	}
}

// promptWallet reads the seed phrase and the wallet address from in. An empty
// address means the wallet is not a web3-auth one and carries no replicated
// metadata.
func promptWallet(in io.Reader, out io.Writer) (models.UserWallet, error) {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "Seed phrase: ")
	seedPhrase, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return models.UserWallet{}, fmt.Errorf("read seed phrase: %w", err)
	}
	seedPhrase = strings.TrimSpace(seedPhrase)
	if seedPhrase == "" {
		return models.UserWallet{}, errors.New("empty seed phrase")
	}

	fmt.Fprint(out, "Wallet address (empty if not a web3 wallet): ")
	address, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return models.UserWallet{}, fmt.Errorf("read wallet address: %w", err)
	}
	address = strings.TrimSpace(address)

	wallet := models.UserWallet{SeedPhrase: seedPhrase}
	if address != "" {
		wallet.EthAddress = &address
	}

	return wallet, nil
}
