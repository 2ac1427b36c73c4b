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
	"crypto/tls"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mendersoftware/tours/model"
	"github.com/mendersoftware/tours/store"
)

const (
	DbVersion = "1.1.0"

	DbName      = "natours"
	DbToursColl = "tours"

	DbTourId             = "_id"
	DbTourName           = "name"
	DbTourPrice          = "price"
	DbTourDifficulty     = "difficulty"
	DbTourRatingsAverage = "ratingsAverage"
	DbTourRatingsQty     = "ratingsQuantity"

	connectTimeout = 10 * time.Second
)

type DataStoreMongoConfig struct {
	// connection string
	ConnectionString string

	// database holding the tours collection, DbName if empty
	DbName string

	// SSL support
	SSL           bool
	SSLSkipVerify bool

	// Overwrites credentials provided in connection string if provided
	Username string
	Password string
}

type DataStoreMongo struct {
	client      *mongo.Client
	dbName      string
	automigrate bool
}

func NewDataStoreMongoWithSession(client *mongo.Client) *DataStoreMongo {
	return &DataStoreMongo{client: client, dbName: DbName}
}

func NewDataStoreMongo(config DataStoreMongoConfig) (store.DataStore, error) {
	client, err := NewClient(context.Background(), config)
	if err != nil {
		return nil, err
	}
	db := NewDataStoreMongoWithSession(client)
	if config.DbName != "" {
		db.dbName = config.DbName
	}
	return db, nil
}

// NewClient connects to the database and validates the connection.
func NewClient(ctx context.Context, config DataStoreMongoConfig) (*mongo.Client, error) {
	connectionString := config.ConnectionString
	if !strings.Contains(connectionString, "://") {
		connectionString = "mongodb://" + connectionString
	}
	clientOptions := mopts.Client().ApplyURI(connectionString)

	if config.Username != "" {
		clientOptions.SetAuth(mopts.Credential{
			Username: config.Username,
			Password: config.Password,
		})
	}

	if config.SSL {
		tlsConfig := &tls.Config{}
		tlsConfig.InsecureSkipVerify = config.SSLSkipVerify
		clientOptions.SetTLSConfig(tlsConfig)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo server")
	}

	// Validate connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "error reaching mongo server")
	}

	return client, nil
}

func (db *DataStoreMongo) collection() *mongo.Collection {
	return db.client.Database(db.dbName).Collection(DbToursColl)
}

func (db *DataStoreMongo) Ping(ctx context.Context) error {
	res := db.client.Database(db.dbName).RunCommand(ctx, bson.M{"ping": 1})
	return res.Err()
}

func (db *DataStoreMongo) GetTours(ctx context.Context, q store.ListQuery) ([]model.Tour, int, error) {
	c := db.collection()

	filter := makeFilter(q.Filter)
	findOpts := makeFindOptions(q)

	cursor, err := c.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, -1, errors.Wrap(err, "failed to search tours")
	}
	defer cursor.Close(ctx)

	tours := []model.Tour{}
	if err = cursor.All(ctx, &tours); err != nil {
		return nil, -1, errors.Wrap(err, "failed to fetch tour list")
	}

	count, err := c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, -1, errors.Wrap(err, "failed to count tours")
	}

	return tours, int(count), nil
}

func (db *DataStoreMongo) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	c := db.collection()

	res := model.Tour{}
	err := c.FindOne(ctx, bson.M{DbTourId: id}).Decode(&res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to fetch tour")
	}

	return &res, nil
}

func (db *DataStoreMongo) InsertTour(ctx context.Context, tour *model.Tour) error {
	if tour == nil {
		return errors.New("no tour given")
	}
	c := db.collection()

	_, err := c.InsertOne(ctx, tour)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicateTour
		}
		return errors.Wrap(err, "failed to store tour")
	}
	return nil
}

func (db *DataStoreMongo) InsertTours(ctx context.Context, tours []model.Tour) (int, error) {
	if len(tours) == 0 {
		return 0, nil
	}
	c := db.collection()

	docs := make([]interface{}, len(tours))
	for i := range tours {
		docs[i] = tours[i]
	}

	_, err := c.InsertMany(ctx, docs, mopts.InsertMany().SetOrdered(true))
	if err != nil {
		// ordered inserts stop at the first failing document
		inserted := 0
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) && len(bwe.WriteErrors) > 0 {
			inserted = bwe.WriteErrors[0].Index
		}
		if mongo.IsDuplicateKeyError(err) {
			return inserted, errors.Wrap(store.ErrDuplicateTour, "failed to store tours")
		}
		return inserted, errors.Wrap(err, "failed to store tours")
	}
	return len(tours), nil
}

func (db *DataStoreMongo) UpdateTour(
	ctx context.Context,
	id string,
	update *model.TourUpdate,
) (*model.Tour, error) {
	if update == nil || update.IsEmpty() {
		return nil, model.ErrEmptyUpdate
	}
	c := db.collection()

	opts := mopts.FindOneAndUpdate().
		SetReturnDocument(mopts.After)

	res := model.Tour{}
	err := c.FindOneAndUpdate(ctx,
		bson.M{DbTourId: id},
		bson.M{"$set": update},
		opts,
	).Decode(&res)
	switch {
	case err == mongo.ErrNoDocuments:
		return nil, store.ErrTourNotFound
	case mongo.IsDuplicateKeyError(err):
		return nil, store.ErrDuplicateTour
	case err != nil:
		return nil, errors.Wrap(err, "failed to update tour")
	}
	return &res, nil
}

func (db *DataStoreMongo) DeleteTour(ctx context.Context, id string) error {
	c := db.collection()

	res, err := c.DeleteOne(ctx, bson.M{DbTourId: id})
	if err != nil {
		return errors.Wrap(err, "failed to delete tour")
	}
	if res.DeletedCount == 0 {
		return store.ErrTourNotFound
	}
	return nil
}

func (db *DataStoreMongo) DeleteTours(ctx context.Context) (int64, error) {
	c := db.collection()

	res, err := c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete tours")
	}
	return res.DeletedCount, nil
}

func (db *DataStoreMongo) GetTourStats(ctx context.Context, minRating float64) ([]model.TourStats, error) {
	c := db.collection()

	cursor, err := c.Aggregate(ctx, makeStatsPipeline(minRating))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate tour stats")
	}
	defer cursor.Close(ctx)

	stats := []model.TourStats{}
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, errors.Wrap(err, "failed to decode tour stats")
	}
	return stats, nil
}
