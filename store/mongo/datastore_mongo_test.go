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
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mendersoftware/go-lib-micro/mongo/migrate"

	"github.com/mendersoftware/tours/model"
	"github.com/mendersoftware/tours/store"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func makeTestTours() []model.Tour {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tours := []model.Tour{
		{
			ID: "t1", Name: "The Forest Hiker", Duration: 5, MaxGroupSize: 25,
			Difficulty: model.DifficultyEasy, RatingsAverage: 4.7,
			RatingsQuantity: 37, Price: 397,
		},
		{
			ID: "t2", Name: "The Sea Explorer", Duration: 7, MaxGroupSize: 15,
			Difficulty: model.DifficultyMedium, RatingsAverage: 4.8,
			RatingsQuantity: 23, Price: 497,
		},
		{
			ID: "t3", Name: "The Snow Adventurer", Duration: 4, MaxGroupSize: 10,
			Difficulty: model.DifficultyDifficult, RatingsAverage: 4.5,
			RatingsQuantity: 13, Price: 997,
		},
		{
			ID: "t4", Name: "The City Wanderer", Duration: 9, MaxGroupSize: 20,
			Difficulty: model.DifficultyEasy, RatingsAverage: 4.6,
			RatingsQuantity: 54, Price: 1197,
		},
		{
			ID: "t5", Name: "The Park Camper", Duration: 10, MaxGroupSize: 15,
			Difficulty: model.DifficultyMedium, RatingsAverage: 4.9,
			RatingsQuantity: 19, Price: 1497,
		},
	}
	for i := range tours {
		c := created.Add(time.Duration(i) * time.Hour)
		tours[i].ApplyDefaults(c)
	}
	return tours
}

func tourIDs(tours []model.Tour) []string {
	ids := make([]string, len(tours))
	for i, t := range tours {
		ids[i] = t.ID
	}
	return ids
}

func TestPing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestPing in short mode")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancel()
	dataStore := NewDataStoreMongoWithSession(db.Client())
	err := dataStore.Ping(ctx)
	assert.NoError(t, err)
}

func TestNewDataStoreMongo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestNewDataStoreMongo in short mode.")
	}

	ds, err := NewDataStoreMongo(DataStoreMongoConfig{
		ConnectionString: "illegal url",
	})

	assert.Nil(t, ds)
	assert.Error(t, err)
}

func TestMongoGetTours(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoGetTours in short mode.")
	}

	inputTours := makeTestTours()

	testCases := map[string]struct {
		query store.ListQuery

		outIDs   []string
		outTotal int
	}{
		"all, default order": {
			query: store.ListQuery{
				Sort: store.SortSpec{{AttrName: store.FieldCreatedAt}},
			},
			outIDs:   []string{"t5", "t4", "t3", "t2", "t1"},
			outTotal: 5,
		},
		"equality on string field": {
			query: store.ListQuery{
				Filter: store.FilterSpec{
					"difficulty": {Values: []string{"easy"}},
				},
				Sort: store.SortSpec{{AttrName: "price", Ascending: true}},
			},
			outIDs:   []string{"t1", "t4"},
			outTotal: 2,
		},
		"comparison on numeric field": {
			query: store.ListQuery{
				Filter: store.FilterSpec{
					"duration": {Conditions: []store.Condition{
						{Operator: store.Gte, Token: "gte", Value: "7"},
					}},
				},
				Sort: store.SortSpec{{AttrName: "duration", Ascending: true}},
			},
			outIDs:   []string{"t2", "t4", "t5"},
			outTotal: 3,
		},
		"range on numeric field": {
			query: store.ListQuery{
				Filter: store.FilterSpec{
					"price": {Conditions: []store.Condition{
						{Operator: store.Gt, Token: "gt", Value: "400"},
						{Operator: store.Lte, Token: "lte", Value: "1197"},
					}},
				},
				Sort: store.SortSpec{{AttrName: "price", Ascending: true}},
			},
			outIDs:   []string{"t2", "t3", "t4"},
			outTotal: 3,
		},
		"multiple values": {
			query: store.ListQuery{
				Filter: store.FilterSpec{
					"duration": {Values: []string{"4", "5"}},
				},
				Sort: store.SortSpec{{AttrName: "duration", Ascending: true}},
			},
			outIDs:   []string{"t3", "t1"},
			outTotal: 2,
		},
		"multi-key sort": {
			query: store.ListQuery{
				Sort: store.SortSpec{
					{AttrName: "maxGroupSize", Ascending: true},
					{AttrName: "price", Ascending: false},
				},
			},
			outIDs:   []string{"t3", "t5", "t2", "t4", "t1"},
			outTotal: 5,
		},
		"paginated": {
			query: store.ListQuery{
				Sort:       store.SortSpec{{AttrName: "price", Ascending: true}},
				Pagination: &store.Pagination{Page: 2, Limit: 2, Skip: 2},
			},
			outIDs:   []string{"t3", "t4"},
			outTotal: 5,
		},
		"page past the end": {
			query: store.ListQuery{
				Sort:       store.SortSpec{{AttrName: "price", Ascending: true}},
				Pagination: &store.Pagination{Page: 4, Limit: 2, Skip: 6},
			},
			outIDs:   []string{},
			outTotal: 5,
		},
		"no match": {
			query: store.ListQuery{
				Filter: store.FilterSpec{
					"difficulty": {Values: []string{"extreme"}},
				},
			},
			outIDs:   []string{},
			outTotal: 0,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			db.Wipe()

			ctx := db.CTX()
			ds := NewDataStoreMongoWithSession(db.Client())

			n, err := ds.InsertTours(ctx, inputTours)
			assert.NoError(t, err)
			assert.Equal(t, len(inputTours), n)

			tours, total, err := ds.GetTours(ctx, tc.query)
			assert.NoError(t, err)
			assert.Equal(t, tc.outTotal, total)
			assert.Equal(t, tc.outIDs, tourIDs(tours))
		})
	}
}

func TestMongoGetToursProjection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoGetToursProjection in short mode.")
	}

	db.Wipe()
	ctx := db.CTX()
	ds := NewDataStoreMongoWithSession(db.Client())

	_, err := ds.InsertTours(ctx, makeTestTours())
	assert.NoError(t, err)

	tours, _, err := ds.GetTours(ctx, store.ListQuery{
		Filter:     store.FilterSpec{"_id": {Values: []string{"t1"}}},
		Projection: &store.Projection{Include: []string{"name", "price"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, []model.Tour{
		{ID: "t1", Name: "The Forest Hiker", Price: 397},
	}, tours)

	tours, _, err = ds.GetTours(ctx, store.ListQuery{
		Filter:     store.FilterSpec{"_id": {Values: []string{"t1"}}},
		Projection: &store.Projection{Exclude: []string{store.FieldVersion}},
	})
	assert.NoError(t, err)
	if assert.Len(t, tours, 1) {
		assert.Nil(t, tours[0].Version)
		assert.NotNil(t, tours[0].CreatedAt)
		assert.Equal(t, "The Forest Hiker", tours[0].Name)
	}
}

func TestMongoGetTour(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoGetTour in short mode.")
	}

	db.Wipe()
	ctx := db.CTX()
	ds := NewDataStoreMongoWithSession(db.Client())

	inputTours := makeTestTours()
	_, err := ds.InsertTours(ctx, inputTours)
	assert.NoError(t, err)

	tour, err := ds.GetTour(ctx, "t2")
	assert.NoError(t, err)
	assert.Equal(t, &inputTours[1], tour)

	tour, err = ds.GetTour(ctx, "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, tour)
}

func TestMongoInsertTour(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoInsertTour in short mode.")
	}

	db.Wipe()
	ctx := db.CTX()
	ds := NewDataStoreMongoWithSession(db.Client()).WithAutomigrate()
	assert.NoError(t, ds.Migrate(ctx, DbVersion))

	tour := makeTestTours()[0]
	assert.NoError(t, ds.InsertTour(ctx, &tour))

	// the unique name index rejects a second tour with the same name
	dup := tour
	dup.ID = "other"
	err := ds.InsertTour(ctx, &dup)
	assert.Equal(t, store.ErrDuplicateTour, err)

	assert.EqualError(t, ds.InsertTour(ctx, nil), "no tour given")
}

func TestMongoInsertToursDuplicate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoInsertToursDuplicate in short mode.")
	}

	db.Wipe()
	ctx := db.CTX()
	ds := NewDataStoreMongoWithSession(db.Client()).WithAutomigrate()
	assert.NoError(t, ds.Migrate(ctx, DbVersion))

	tours := makeTestTours()
	tours[2].Name = tours[0].Name

	n, err := ds.InsertTours(ctx, tours)
	assert.Equal(t, 2, n)
	assert.True(t, errors.Is(err, store.ErrDuplicateTour))

	n, err = ds.InsertTours(ctx, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMongoUpdateTour(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoUpdateTour in short mode.")
	}

	testCases := map[string]struct {
		id     string
		update *model.TourUpdate

		outTour func(model.Tour) model.Tour
		err     error
	}{
		"ok": {
			id: "t1",
			update: &model.TourUpdate{
				Price:   floatPtr(450),
				Summary: strPtr("Breathtaking hike"),
			},
			outTour: func(t model.Tour) model.Tour {
				t.Price = 450
				t.Summary = "Breathtaking hike"
				return t
			},
		},
		"not found": {
			id:     "nonexistent",
			update: &model.TourUpdate{Price: floatPtr(450)},
			err:    store.ErrTourNotFound,
		},
		"duplicate name": {
			id:     "t1",
			update: &model.TourUpdate{Name: strPtr("The Sea Explorer")},
			err:    store.ErrDuplicateTour,
		},
		"empty update": {
			id:     "t1",
			update: &model.TourUpdate{},
			err:    model.ErrEmptyUpdate,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			db.Wipe()
			ctx := db.CTX()
			ds := NewDataStoreMongoWithSession(db.Client()).WithAutomigrate()
			assert.NoError(t, ds.Migrate(ctx, DbVersion))

			inputTours := makeTestTours()
			_, err := ds.InsertTours(ctx, inputTours)
			assert.NoError(t, err)

			tour, err := ds.UpdateTour(ctx, tc.id, tc.update)
			if tc.err != nil {
				assert.Equal(t, tc.err, err)
				assert.Nil(t, tour)
				return
			}
			assert.NoError(t, err)
			expected := tc.outTour(inputTours[0])
			assert.Equal(t, &expected, tour)
		})
	}
}

func TestMongoDeleteTour(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoDeleteTour in short mode.")
	}

	db.Wipe()
	ctx := db.CTX()
	ds := NewDataStoreMongoWithSession(db.Client())

	_, err := ds.InsertTours(ctx, makeTestTours())
	assert.NoError(t, err)

	assert.NoError(t, ds.DeleteTour(ctx, "t3"))
	assert.Equal(t, store.ErrTourNotFound, ds.DeleteTour(ctx, "t3"))

	tour, err := ds.GetTour(ctx, "t3")
	assert.NoError(t, err)
	assert.Nil(t, tour)

	n, err := ds.DeleteTours(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, total, err := ds.GetTours(ctx, store.ListQuery{})
	assert.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestMongoGetTourStats(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMongoGetTourStats in short mode.")
	}

	db.Wipe()
	ctx := db.CTX()
	ds := NewDataStoreMongoWithSession(db.Client())

	_, err := ds.InsertTours(ctx, makeTestTours())
	assert.NoError(t, err)

	stats, err := ds.GetTourStats(ctx, 4.6)
	assert.NoError(t, err)
	assert.Equal(t, []model.TourStats{
		{
			Difficulty: "EASY",
			NumTours:   2,
			NumRatings: 91,
			AvgRating:  4.65,
			AvgPrice:   797,
			MinPrice:   397,
			MaxPrice:   1197,
		},
		{
			Difficulty: "MEDIUM",
			NumTours:   2,
			NumRatings: 42,
			AvgRating:  4.85,
			AvgPrice:   997,
			MinPrice:   497,
			MaxPrice:   1497,
		},
	}, roundStats(stats))
}

// roundStats strips floating point noise from the averages.
func roundStats(stats []model.TourStats) []model.TourStats {
	for i := range stats {
		stats[i].AvgRating = float64(int(stats[i].AvgRating*100+0.5)) / 100
	}
	return stats
}

func TestMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMigrate in short mode.")
	}

	testCases := map[string]struct {
		versionFrom string
		automigrate bool

		outVers []string
		err     error
	}{
		"from no version (fresh db)": {
			automigrate: true,

			outVers: []string{
				"1.0.0",
				DbVersion,
			},
		},
		"from 1.0.0": {
			versionFrom: "1.0.0",
			automigrate: true,

			outVers: []string{
				"1.0.0",
				DbVersion,
			},
		},
		"from 0.0.0, no-automigrate": {
			versionFrom: "0.0.0",

			err: errors.New("failed to apply migrations: db needs migration: " +
				DbName + " has version 0.0.0, needs version " + DbVersion),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			db.Wipe()

			client := db.Client()
			ctx := db.CTX()

			ds := NewDataStoreMongoWithSession(client).WithAutomigrate()
			if !tc.automigrate {
				ds = NewDataStoreMongoWithSession(client)
			}

			if tc.versionFrom != "" {
				v, err := migrate.NewVersion(tc.versionFrom)
				assert.NoError(t, err)

				_, err = client.
					Database(DbName).
					Collection(migrate.DbMigrationsColl).
					InsertOne(ctx, migrate.MigrationEntry{Version: *v})
				assert.NoError(t, err)
			}

			err := ds.Migrate(ctx, DbVersion)
			if tc.err != nil {
				assert.EqualError(t, err, tc.err.Error())
				return
			}
			assert.NoError(t, err)

			var out []migrate.MigrationEntry
			cursor, err := client.
				Database(DbName).
				Collection(migrate.DbMigrationsColl).
				Find(ctx, bson.M{})
			assert.NoError(t, err)
			assert.NoError(t, cursor.All(ctx, &out))

			if assert.Len(t, out, len(tc.outVers)) {
				for i, v := range tc.outVers {
					assert.Equal(t, v, out[i].Version.String())
				}
			}
		})
	}
}

func TestMigration_1_1_0(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestMigration_1_1_0 in short mode.")
	}

	db.Wipe()
	client := db.Client()
	ctx := context.Background()
	ds := NewDataStoreMongoWithSession(client)

	coll := client.Database(DbName).Collection(DbToursColl)
	_, err := coll.InsertMany(ctx, []interface{}{
		bson.M{"_id": "legacy", "name": "Legacy Tour", "price": 100},
		bson.M{"_id": "current", "name": "Current Tour", "price": 200, "__v": 3},
	})
	assert.NoError(t, err)

	migrator := &migrate.SimpleMigrator{
		Client:      client,
		Db:          DbName,
		Automigrate: true,
	}
	err = migrator.Apply(ctx, migrate.MakeVersion(1, 1, 0), []migrate.Migration{
		&migration_1_0_0{ms: ds, ctx: ctx},
		&migration_1_1_0{ms: ds, ctx: ctx},
	})
	assert.NoError(t, err)

	legacy, err := ds.GetTour(ctx, "legacy")
	assert.NoError(t, err)
	if assert.NotNil(t, legacy) {
		assert.NotNil(t, legacy.CreatedAt)
		if assert.NotNil(t, legacy.Version) {
			assert.Equal(t, 0, *legacy.Version)
		}
	}

	current, err := ds.GetTour(ctx, "current")
	assert.NoError(t, err)
	if assert.NotNil(t, current) && assert.NotNil(t, current.Version) {
		assert.Equal(t, 3, *current.Version)
	}
}

func TestWithAutomigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestWithAutomigrate in short mode.")
	}
	db.Wipe()

	client := db.Client()

	store := NewDataStoreMongoWithSession(client)

	newStore := store.WithAutomigrate()

	assert.NotEqual(t, store, newStore)
}
