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
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mendersoftware/tours/store"
)

// makeFilter translates the filter spec into a find filter. Query
// string values are untyped, so a value that parses as a number also
// matches its numeric form.
func makeFilter(spec store.FilterSpec) bson.M {
	queryFilters := make([]bson.M, 0, len(spec))
	for _, field := range spec.Fields() {
		ff := spec[field]
		switch len(ff.Values) {
		case 0:
		case 1:
			queryFilters = append(queryFilters, matchValue(field, "$eq", ff.Values[0]))
		default:
			queryFilters = append(queryFilters, bson.M{field: bson.M{"$in": inValues(ff.Values)}})
		}
		for _, c := range ff.Conditions {
			if c.Operator == store.OpNone {
				// unrecognized tokens are not operators; they are
				// passed to the database unchanged
				queryFilters = append(queryFilters, bson.M{field: bson.M{c.Token: c.Value}})
				continue
			}
			queryFilters = append(queryFilters, matchValue(field, c.Native(), c.Value))
		}
	}

	findQuery := bson.M{}
	if len(queryFilters) > 0 {
		findQuery["$and"] = queryFilters
	}
	return findQuery
}

func matchValue(field, op, value string) bson.M {
	if valueFloat, ok := parseNumber(value); ok {
		return bson.M{"$or": []bson.M{
			{field: bson.M{op: value}},
			{field: bson.M{op: valueFloat}},
		}}
	}
	return bson.M{field: bson.M{op: value}}
}

func inValues(values []string) []interface{} {
	in := make([]interface{}, 0, 2*len(values))
	for _, v := range values {
		in = append(in, v)
		if valueFloat, ok := parseNumber(v); ok {
			in = append(in, valueFloat)
		}
	}
	return in
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func makeSort(spec store.SortSpec) bson.D {
	sort := make(bson.D, 0, len(spec))
	for _, s := range spec {
		order := -1
		if s.Ascending {
			order = 1
		}
		sort = append(sort, bson.E{Key: s.AttrName, Value: order})
	}
	return sort
}

// makeProjection builds the projection document. The database rejects
// mixing inclusion and exclusion, so with an inclusion list only an
// exclusion of _id is kept.
func makeProjection(proj *store.Projection) bson.D {
	doc := bson.D{}
	if len(proj.Include) > 0 {
		for _, f := range proj.Include {
			doc = append(doc, bson.E{Key: f, Value: 1})
		}
		for _, f := range proj.Exclude {
			if f == DbTourId {
				doc = append(doc, bson.E{Key: f, Value: 0})
			}
		}
		return doc
	}
	for _, f := range proj.Exclude {
		doc = append(doc, bson.E{Key: f, Value: 0})
	}
	return doc
}

func makeFindOptions(q store.ListQuery) *mopts.FindOptions {
	opts := mopts.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(makeSort(q.Sort))
	}
	if q.Projection != nil {
		if proj := makeProjection(q.Projection); len(proj) > 0 {
			opts.SetProjection(proj)
		}
	}
	if q.Pagination != nil {
		opts.SetSkip(int64(q.Pagination.Skip))
		opts.SetLimit(int64(q.Pagination.Limit))
	}
	return opts
}

func makeStatsPipeline(minRating float64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			DbTourRatingsAverage: bson.M{"$gte": minRating},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.M{"$toUpper": "$" + DbTourDifficulty}},
			{Key: "numTours", Value: bson.M{"$sum": 1}},
			{Key: "numRatings", Value: bson.M{"$sum": "$" + DbTourRatingsQty}},
			{Key: "avgRating", Value: bson.M{"$avg": "$" + DbTourRatingsAverage}},
			{Key: "avgPrice", Value: bson.M{"$avg": "$" + DbTourPrice}},
			{Key: "minPrice", Value: bson.M{"$min": "$" + DbTourPrice}},
			{Key: "maxPrice", Value: bson.M{"$max": "$" + DbTourPrice}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avgPrice", Value: 1}}}},
	}
}
