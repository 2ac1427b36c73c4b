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

package http

import (
	"net/http"
	"sort"

	"github.com/ant0ine/go-json-rest/rest"
)

type ApiHandler interface {
	GetApp() (rest.App, error)
}

// OptionsHandler builds a handler answering OPTIONS for a path served
// with the given methods.
type OptionsHandler func(methods map[string]bool) rest.HandlerFunc

// AllowHeaderOptionsGenerator answers OPTIONS with an Allow header
// listing the methods of the path.
func AllowHeaderOptionsGenerator(methods map[string]bool) rest.HandlerFunc {
	allowed := make([]string, 0, len(methods)+1)
	for m := range methods {
		allowed = append(allowed, m)
	}
	allowed = append(allowed, http.MethodOptions)
	sort.Strings(allowed)

	return func(w rest.ResponseWriter, r *rest.Request) {
		for _, m := range allowed {
			w.Header().Add("Allow", m)
		}
	}
}

// AutogenOptionsRoutes appends an OPTIONS route for every path that
// does not define one.
func AutogenOptionsRoutes(routes []*rest.Route, gen OptionsHandler) []*rest.Route {
	methodGroups := make(map[string]map[string]bool, len(routes))
	var paths []string

	for _, route := range routes {
		if _, ok := methodGroups[route.PathExp]; !ok {
			methodGroups[route.PathExp] = make(map[string]bool)
			paths = append(paths, route.PathExp)
		}
		methodGroups[route.PathExp][route.HttpMethod] = true
	}

	options := make([]*rest.Route, 0, len(methodGroups))
	for _, path := range paths {
		methods := methodGroups[path]
		if methods[http.MethodOptions] {
			continue
		}
		options = append(options, rest.Options(path, gen(methods)))
	}

	return append(routes, options...)
}
