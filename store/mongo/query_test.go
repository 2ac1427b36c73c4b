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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mendersoftware/tours/store"
)

func TestMakeFilter(t *testing.T) {
	testCases := map[string]struct {
		spec   store.FilterSpec
		filter bson.M
	}{
		"empty": {
			spec:   store.FilterSpec{},
			filter: bson.M{},
		},
		"nil": {
			filter: bson.M{},
		},
		"string equality": {
			spec: store.FilterSpec{
				"difficulty": {Values: []string{"easy"}},
			},
			filter: bson.M{"$and": []bson.M{
				{"difficulty": bson.M{"$eq": "easy"}},
			}},
		},
		"numeric comparison matches both forms": {
			spec: store.FilterSpec{
				"price": {Conditions: []store.Condition{
					{Operator: store.Gte, Token: "gte", Value: "500"},
				}},
			},
			filter: bson.M{"$and": []bson.M{
				{"$or": []bson.M{
					{"price": bson.M{"$gte": "500"}},
					{"price": bson.M{"$gte": 500.0}},
				}},
			}},
		},
		"multiple values": {
			spec: store.FilterSpec{
				"duration": {Values: []string{"5", "seven"}},
			},
			filter: bson.M{"$and": []bson.M{
				{"duration": bson.M{"$in": []interface{}{"5", 5.0, "seven"}}},
			}},
		},
		"unrecognized token passed through": {
			spec: store.FilterSpec{
				"price": {Conditions: []store.Condition{
					{Operator: store.OpNone, Token: "ne", Value: "1"},
				}},
			},
			filter: bson.M{"$and": []bson.M{
				{"price": bson.M{"ne": "1"}},
			}},
		},
		"fields in lexical order": {
			spec: store.FilterSpec{
				"price": {Conditions: []store.Condition{
					{Operator: store.Lt, Token: "lt", Value: "cheap"},
				}},
				"difficulty": {Values: []string{"easy"}},
			},
			filter: bson.M{"$and": []bson.M{
				{"difficulty": bson.M{"$eq": "easy"}},
				{"price": bson.M{"$lt": "cheap"}},
			}},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.filter, makeFilter(tc.spec))
		})
	}
}

func TestMakeSort(t *testing.T) {
	sort := makeSort(store.SortSpec{
		{AttrName: "ratingsAverage", Ascending: false},
		{AttrName: "price", Ascending: true},
	})
	assert.Equal(t, bson.D{
		{Key: "ratingsAverage", Value: -1},
		{Key: "price", Value: 1},
	}, sort)
}

func TestMakeProjection(t *testing.T) {
	testCases := map[string]struct {
		proj *store.Projection
		doc  bson.D
	}{
		"default": {
			proj: &store.Projection{Exclude: []string{"__v"}},
			doc:  bson.D{{Key: "__v", Value: 0}},
		},
		"inclusion": {
			proj: &store.Projection{Include: []string{"name", "price"}},
			doc:  bson.D{{Key: "name", Value: 1}, {Key: "price", Value: 1}},
		},
		"mixed keeps inclusion and id exclusion": {
			proj: &store.Projection{
				Include: []string{"name"},
				Exclude: []string{"summary", "_id"},
			},
			doc: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 0}},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.doc, makeProjection(tc.proj))
		})
	}
}

func TestMakeFindOptions(t *testing.T) {
	opts := makeFindOptions(store.ListQuery{
		Sort:       store.SortSpec{{AttrName: "createdAt"}},
		Projection: &store.Projection{Include: []string{"name"}},
		Pagination: &store.Pagination{Page: 3, Limit: 10, Skip: 20},
	})
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts.Sort)
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, opts.Projection)
	if assert.NotNil(t, opts.Skip) && assert.NotNil(t, opts.Limit) {
		assert.Equal(t, int64(20), *opts.Skip)
		assert.Equal(t, int64(10), *opts.Limit)
	}

	empty := makeFindOptions(store.ListQuery{})
	assert.Nil(t, empty.Sort)
	assert.Nil(t, empty.Projection)
	assert.Nil(t, empty.Skip)
	assert.Nil(t, empty.Limit)
}
