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
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mendersoftware/tours/store"
)

// migration_1_1_0 backfills the document version and creation time of
// tours loaded before the service owned those fields.
type migration_1_1_0 struct {
	ms  *DataStoreMongo
	ctx context.Context
}

func (m *migration_1_1_0) Up(from migrate.Version) error {
	l := log.FromContext(m.ctx)

	coll := m.ms.client.Database(m.ms.dbName).Collection(DbToursColl)

	resp, err := coll.UpdateMany(m.ctx,
		bson.M{store.FieldVersion: bson.M{"$exists": false}},
		bson.M{"$set": bson.M{store.FieldVersion: 0}},
	)
	if err != nil {
		return err
	}
	l.Infof("Set version to 0 for %d tours", resp.ModifiedCount)

	resp, err = coll.UpdateMany(m.ctx,
		bson.M{store.FieldCreatedAt: bson.M{"$exists": false}},
		bson.M{"$set": bson.M{store.FieldCreatedAt: time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	l.Infof("Set creation time for %d tours", resp.ModifiedCount)

	return nil
}

func (m *migration_1_1_0) Version() migrate.Version {
	return migrate.MakeVersion(1, 1, 0)
}
