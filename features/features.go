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

// Package features translates list request query parameters into the
// filter, sort, projection and pagination facets of a store.ListQuery.
//
//	q := features.New(&store.ListQuery{}, r.URL.Query()).
//		Filter().
//		Sort().
//		LimitFields().
//		Paginate().
//		Query()
//
// Every stage is total: unknown keys become filters, malformed numbers
// fall back to defaults, nothing is rejected.
package features

import (
	"net/url"

	"github.com/mendersoftware/tours/store"
)

const (
	ParamPage   = "page"
	ParamSort   = "sort"
	ParamLimit  = "limit"
	ParamFields = "fields"

	DefaultPage  = 1
	DefaultLimit = 100
)

var reservedParams = []string{ParamPage, ParamSort, ParamLimit, ParamFields}

// QueryFeatures owns a single query handle for the lifetime of one
// request and narrows it stage by stage.
type QueryFeatures struct {
	query  *store.ListQuery
	params url.Values
}

func New(query *store.ListQuery, params url.Values) *QueryFeatures {
	if query == nil {
		query = &store.ListQuery{}
	}
	return &QueryFeatures{
		query:  query,
		params: params,
	}
}

func (f *QueryFeatures) Filter() *QueryFeatures {
	f.query.Filter = ParseFilter(f.params)
	return f
}

func (f *QueryFeatures) Sort() *QueryFeatures {
	f.query.Sort = ParseSort(f.params)
	return f
}

func (f *QueryFeatures) LimitFields() *QueryFeatures {
	f.query.Projection = ParseFields(f.params)
	return f
}

func (f *QueryFeatures) Paginate() *QueryFeatures {
	f.query.Pagination = ParsePagination(f.params)
	return f
}

// Query returns the composed handle, ready to be executed.
func (f *QueryFeatures) Query() *store.ListQuery {
	return f.query
}
