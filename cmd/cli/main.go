package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/teebay/internal/buildinfo"
	"github.com/dmitrijs2005/teebay/internal/client/cli"
	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/config"
	"github.com/dmitrijs2005/teebay/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/teebay/internal/client/services"
	"github.com/dmitrijs2005/teebay/internal/filex"
	"github.com/dmitrijs2005/teebay/internal/logging"
)

const sessionDB = "session.db"

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, os.Stderr)

	dsn, err := filex.PathIn(cfg.DataDir, sessionDB)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	api, err := client.NewGraphQLClient(cfg.GraphQLEndpoint, cfg.RequestTimeout, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	session := services.NewSession(api, metadata.NewStore(db), logger)
	api.UseTokenSource(session)

	deps := cli.Deps{
		Session:      session,
		Catalog:      services.NewProductService(api, logger),
		Transactions: services.NewTransactionService(api),
		Users:        services.NewUserService(api),
	}
	app := cli.NewApp(deps, logger, os.Stdin, os.Stdout)

	app.Run(ctx)

}
