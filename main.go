// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/urfave/cli"

	"github.com/mendersoftware/tours/inv"
	"github.com/mendersoftware/tours/store"
	"github.com/mendersoftware/tours/store/mongo"
)

func main() {
	doMain(os.Args)
}

func doMain(args []string) {
	var configPath string
	var debug bool

	app := cli.NewApp()
	app.Usage = "Tours Service"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name: "config",
			Usage: "Configuration `FILE`." +
				" Supports JSON, TOML, YAML and HCL formatted configs.",
			Destination: &configPath,
		},
		cli.BoolFlag{
			Name:  "dev",
			Usage: "Use development setup",
		},
		cli.BoolFlag{
			Name:        "debug",
			Usage:       "Enable debug logging",
			Destination: &debug,
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "server",
			Usage: "Run the service as a server",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "automigrate",
					Usage: "Run database migrations before starting.",
				},
			},

			Action: cmdServer,
		},
		{
			Name:  "migrate",
			Usage: "Run migrations",

			Action: cmdMigrate,
		},
		{
			Name:  "import-data",
			Usage: "Load tours from a JSON or YAML file into the database",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Usage: "Tours data `FILE`, a list of tours.",
				},
			},

			Action: cmdImportData,
		},
		{
			Name:  "delete-data",
			Usage: "Remove all the tours from the database",

			Action: cmdDeleteData,
		},
	}

	app.Action = cmdServer
	app.Before = func(args *cli.Context) error {
		log.Setup(debug)

		err := config.FromConfigFile(configPath, configDefaults)
		if err != nil {
			return cli.NewExitError(
				fmt.Sprintf("error loading configuration: %s", err),
				1)
		}

		// Enable setting config values by environment variables
		config.Config.SetEnvPrefix("TOURS")
		config.Config.AutomaticEnv()

		return nil
	}

	_ = app.Run(args)
}

func connectDataStore() (store.DataStore, error) {
	db, err := mongo.NewDataStoreMongo(makeDataStoreConfig(config.Config))
	if err != nil {
		return nil, cli.NewExitError(
			fmt.Sprintf("failed to connect to db: %v", err),
			3)
	}
	return db, nil
}

func cmdServer(args *cli.Context) error {
	devSetup := args.GlobalBool("dev")

	l := log.New(log.Ctx{})

	if devSetup {
		l.Infof("setting up development configuration")
		config.Config.Set(SettingMiddleware, EnvDev)
	}

	db, err := connectDataStore()
	if err != nil {
		return err
	}

	if args.Bool("automigrate") {
		db = db.WithAutomigrate()
	}

	ctx := context.Background()
	err = db.Migrate(ctx, mongo.DbVersion)
	if err != nil {
		return cli.NewExitError(
			fmt.Sprintf("failed to run migrations: %v", err),
			3)
	}

	l.Print("Tours Service starting up")

	err = RunServer(config.Config, db)
	if err != nil {
		return cli.NewExitError(err.Error(), 4)
	}

	return nil
}

func cmdMigrate(args *cli.Context) error {
	l := log.New(log.Ctx{})

	l.Printf("migrating database %s", config.Config.GetString(SettingDbName))

	db, err := connectDataStore()
	if err != nil {
		return err
	}

	// we want to apply migrations
	db = db.WithAutomigrate()

	err = db.Migrate(context.Background(), mongo.DbVersion)
	if err != nil {
		return cli.NewExitError(
			fmt.Sprintf("failed to run migrations: %v", err),
			3)
	}

	return nil
}

func cmdImportData(args *cli.Context) error {
	path := args.String("file")
	if path == "" {
		return cli.NewExitError("missing data file, use --file", 1)
	}

	tours, err := LoadTours(path)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	db, err := connectDataStore()
	if err != nil {
		return err
	}

	_, err = inv.NewApp(db).ImportTours(context.Background(), tours)
	if err != nil {
		return cli.NewExitError(err.Error(), 4)
	}

	return nil
}

func cmdDeleteData(args *cli.Context) error {
	db, err := connectDataStore()
	if err != nil {
		return err
	}

	_, err = inv.NewApp(db).DeleteAllTours(context.Background())
	if err != nil {
		return cli.NewExitError(err.Error(), 4)
	}

	return nil
}
