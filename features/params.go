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

package features

import (
	"math"
	"net/url"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cast"

	"github.com/mendersoftware/tours/store"
	"github.com/mendersoftware/tours/utils"
)

const descendingPrefix = "-"

// ParseFilter builds the filter spec from every non-reserved parameter.
//
// Operator predicates use the bracket form `field[op]=value`. Only the
// whole tokens gt, gte, lt and lte are rewritten to native operators;
// any other token is kept as is.
func ParseFilter(params url.Values) store.FilterSpec {
	spec := store.FilterSpec{}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	// deterministic condition order for repeated fields
	sort.Strings(keys)

	for _, key := range keys {
		field, token, isOp := splitOperatorKey(key)
		if utils.ContainsString(field, reservedParams) {
			continue
		}

		ff := spec[field]
		values := params[key]
		if isOp {
			op := store.OperatorFromToken(token)
			for _, v := range values {
				ff.Conditions = append(ff.Conditions, store.Condition{
					Operator: op,
					Token:    token,
					Value:    v,
				})
			}
		} else {
			ff.Values = append(ff.Values, values...)
		}
		spec[field] = ff
	}
	return spec
}

// splitOperatorKey tokenizes `field[token]` into its parts. Keys not in
// that exact shape are plain field names.
func splitOperatorKey(key string) (field, token string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, "", false
	}
	token = key[open+1 : len(key)-1]
	if token == "" || strings.ContainsAny(token, "[]") {
		return key, "", false
	}
	return key[:open], token, true
}

// ParseSort reads a comma separated list of fields, each optionally
// prefixed with '-' for descending order. Without a usable sort
// parameter the result is createdAt descending.
func ParseSort(params url.Values) store.SortSpec {
	var spec store.SortSpec
	for _, token := range splitList(params.Get(ParamSort)) {
		desc := strings.HasPrefix(token, descendingPrefix)
		name := strings.TrimPrefix(token, descendingPrefix)
		if name == "" {
			continue
		}
		spec = append(spec, store.Sort{AttrName: name, Ascending: !desc})
	}
	if len(spec) == 0 {
		spec = store.SortSpec{{AttrName: store.FieldCreatedAt, Ascending: false}}
	}
	return spec
}

// ParseFields reads the projection list. A '-' prefix excludes a field.
// Without a usable fields parameter only the version field is hidden.
func ParseFields(params url.Values) *store.Projection {
	proj := &store.Projection{}
	for _, token := range splitList(params.Get(ParamFields)) {
		if name := strings.TrimPrefix(token, descendingPrefix); name != token {
			if name != "" {
				proj.Exclude = append(proj.Exclude, name)
			}
			continue
		}
		proj.Include = append(proj.Include, token)
	}
	if len(proj.Include) == 0 && len(proj.Exclude) == 0 {
		proj.Exclude = []string{store.FieldVersion}
	}
	return proj
}

// ParsePagination coerces page and limit the lenient way: a value that
// is missing, not a number or zero falls back to the default. Negative
// values fall back too, so skip and limit are never negative.
func ParsePagination(params url.Values) *store.Pagination {
	page := coercePositiveInt(params.Get(ParamPage), DefaultPage)
	limit := coercePositiveInt(params.Get(ParamLimit), DefaultLimit)
	return &store.Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

func coercePositiveInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	n := int(f)
	if n < 1 {
		return def
	}
	return n
}

// splitList splits on commas and whitespace, dropping empty tokens.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
