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

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/log"
	u "github.com/mendersoftware/go-lib-micro/rest_utils"
	"github.com/pkg/errors"
)

const msgRouteNotDefined = "This route is not yet defined"

var errRouteNotDefined = errors.New("route not implemented")

// RouteNotDefinedHandler serves the user routes, which have no
// implementation yet.
func RouteNotDefinedHandler(w rest.ResponseWriter, r *rest.Request) {
	l := log.FromContext(r.Context())

	u.RestErrWithLogMsg(w, r, l,
		errors.Wrap(errRouteNotDefined, r.Method+" "+r.URL.Path),
		http.StatusInternalServerError,
		msgRouteNotDefined)
}
