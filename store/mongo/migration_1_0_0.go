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

	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
)

const (
	IndexNameUnique      = "name_unique"
	IndexPriceRatingName = "price_ratingsAverage"
)

// migration_1_0_0 creates the unique tour name index and the index
// backing the cheapest-best-rated listing.
type migration_1_0_0 struct {
	ms  *DataStoreMongo
	ctx context.Context
}

func (m *migration_1_0_0) Up(from migrate.Version) error {
	coll := m.ms.client.Database(m.ms.dbName).Collection(DbToursColl)

	_, err := coll.Indexes().CreateMany(m.ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: DbTourName, Value: 1}},
			Options: mopts.Index().
				SetName(IndexNameUnique).
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: DbTourPrice, Value: 1},
				{Key: DbTourRatingsAverage, Value: -1},
			},
			Options: mopts.Index().
				SetName(IndexPriceRatingName),
		},
	})
	return err
}

func (m *migration_1_0_0) Version() migrate.Version {
	return migrate.MakeVersion(1, 0, 0)
}
