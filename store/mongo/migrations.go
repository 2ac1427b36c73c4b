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

package mongo

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/mongo/migrate"

	"github.com/mendersoftware/tours/store"
)

// WithAutomigrate enables automatic migration and returns a new datastore based
// on current one
func (db *DataStoreMongo) WithAutomigrate() store.DataStore {
	return &DataStoreMongo{
		client:      db.client,
		dbName:      db.dbName,
		automigrate: true,
	}
}

func (db *DataStoreMongo) migrations(ctx context.Context) []migrate.Migration {
	return []migrate.Migration{
		&migration_1_0_0{
			ms:  db,
			ctx: ctx,
		},
		&migration_1_1_0{
			ms:  db,
			ctx: ctx,
		},
	}
}

func (db *DataStoreMongo) Migrate(ctx context.Context, version string) error {
	l := log.FromContext(ctx)

	if db.automigrate {
		l.Infof("automigrate is ON, will apply migrations")
	} else {
		l.Infof("automigrate is OFF, will check db version compatibility")
	}
	l.Infof("migrating %s", db.dbName)

	ver, err := migrate.NewVersion(version)
	if err != nil {
		return errors.Wrap(err, "failed to parse service version")
	}

	m := migrate.SimpleMigrator{
		Client:      db.client,
		Db:          db.dbName,
		Automigrate: db.automigrate,
	}

	err = m.Apply(ctx, *ver, db.migrations(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	return nil
}
