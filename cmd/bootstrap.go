package cmd

import (
	"context"
	"fmt"
	"ipregistrar/internal/config"
	"ipregistrar/internal/contracts"
	"ipregistrar/internal/core"
	"ipregistrar/internal/db"
	"ipregistrar/internal/ethereum"
	"ipregistrar/internal/ipfs"
	"ipregistrar/internal/repository"
	"ipregistrar/internal/social"
	"ipregistrar/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

type app struct {
	logs      *zap.SugaredLogger
	config    config.App
	repo      *repository.LedgerRepository
	registrar *core.Registrar
	addresses contracts.Addresses
	close     func()
}

// requirement checks credentials a command needs before anything is dialed.
type requirement func(config.App) error

// loadApp reads the configuration, runs the command's credential checks and
// only then wires the registrar.
func loadApp(ctx context.Context, requirements ...requirement) (*app, error) {
	appConfig, err := config.NewApp()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for _, require := range requirements {
		if err := require(appConfig); err != nil {
			return nil, err
		}
	}

	return newApp(ctx, appConfig)
}

// newApp wires the registrar. Optional services are left out when their
// credentials are absent.
func newApp(ctx context.Context, appConfig config.App) (_ *app, err error) {
	logger := log.NewZapLogger(serviceName, logLevel())
	if appConfig.LogFile != "" {
		logger = log.NewZapFileLogger(serviceName, logLevel(), appConfig.LogFile)
	}

	dbConn, err := db.NewPostgresDB(appConfig.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = dbConn.Close()
		}
	}()

	repo := repository.NewLedgerRepository(dbConn)
	if err = repo.MigrateAndSeed(ctx, appConfig.API.Username, appConfig.API.PasswordHash); err != nil {
		logger.Errorw("failed to migrate ledger tables", "error", err)
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, appConfig.Chain.RPCURL)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err)
		return nil, err
	}
	defer func() {
		if err != nil {
			client.Close()
		}
	}()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		logger.Errorw("failed to read chain id", "error", err)
		return nil, fmt.Errorf("%w: chain id: %w", ethereum.ErrRPC, err)
	}

	account, err := ethereum.NewAccount(appConfig.Chain.PrivateKey)
	if err != nil {
		return nil, err
	}

	registry, err := contracts.NewRegistry()
	if err != nil {
		return nil, err
	}

	addresses, err := contracts.DefaultAddresses().WithOverrides(appConfig.Chain.Addresses)
	if err != nil {
		return nil, err
	}

	pipeline := ethereum.NewPipeline(logger, client, account, registry, chainID, ethereum.Options{
		FeeModel:            ethereum.FeeModel(appConfig.Chain.FeeModel),
		ConfirmationTimeout: appConfig.Chain.ConfirmationTimeout,
		PollInterval:        appConfig.Chain.PollInterval,
		RetryAttempts:       appConfig.Chain.RetryAttempts,
		RetryDelay:          appConfig.Chain.RetryDelay,
	})

	var pinner core.Pinner
	if appConfig.RequirePinning() == nil {
		pinner, err = ipfs.NewPinataClient(logger, ipfs.Config{
			JWT:        appConfig.Pinata.JWT,
			APIURL:     appConfig.Pinata.APIURL,
			GatewayURL: appConfig.Pinata.GatewayURL,
		})
		if err != nil {
			return nil, err
		}
	}

	var poster core.Poster
	if appConfig.RequireSocial() == nil {
		poster, err = social.NewTwitterClient(logger, social.Config{
			BearerToken: appConfig.Social.BearerToken,
			APIURL:      appConfig.Social.APIURL,
		})
		if err != nil {
			return nil, err
		}
	}

	registrar := core.NewRegistrar(
		logger,
		pipeline,
		registry,
		addresses,
		repo,
		ethereum.NewTransactionFetcher(client, chainID),
		pinner,
		poster)

	logger.Infow("registrar ready",
		"account", account.Address().Hex(),
		"chain_id", chainID.String(),
		"fee_model", appConfig.Chain.FeeModel,
		"pinning", pinner != nil,
		"announcements", poster != nil)

	return &app{
		logs:      logger,
		config:    appConfig,
		repo:      repo,
		registrar: registrar,
		addresses: addresses,
		close: func() {
			client.Close()
			if err := dbConn.Close(); err != nil {
				logger.Errorw("failed to close database", "error", err)
			}
		},
	}, nil
}
