// Package cli is the interactive front end of the CoinKeeper client: a
// small REPL over the session store, the resource services and the derived
// statistics.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/client/api"
	"github.com/dmitrijs2005/coinkeeper/internal/client/config"
	"github.com/dmitrijs2005/coinkeeper/internal/client/db"
	"github.com/dmitrijs2005/coinkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/coinkeeper/internal/client/services"
	"github.com/dmitrijs2005/coinkeeper/internal/client/session"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config       *config.Config
	client       api.Client
	db           *sql.DB
	session      *session.Store
	categories   *services.Categories
	transactions *services.Transactions
	syncer       *services.Syncer
	log          logging.Logger
	reader       *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel})))

	d, err := db.InitDatabase(ctx, c.ClientDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing client database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)

	var codec session.TokenCodec = session.StaticCodec{}
	if c.TokenSecret != "" {
		codec = session.SignedCodec{Secret: []byte(c.TokenSecret), TTL: c.TokenTTL}
	}

	sess := session.NewStore(apiClient, metadata.NewSQLiteRepository(d), codec, logger)
	categories := services.NewCategories(sess, apiClient, logger)
	transactions := services.NewTransactions(sess, apiClient, logger)
	syncer := services.NewSyncer(categories, transactions, logger)
	syncer.Bind(sess)

	return &App{
		config:       c,
		client:       apiClient,
		db:           d,
		session:      sess,
		categories:   categories,
		transactions: transactions,
		syncer:       syncer,
		log:          logger,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.restore(ctx)
	a.Root(ctx)
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing client database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}
