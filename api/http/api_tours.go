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
	"strconv"

	"github.com/ant0ine/go-json-rest/rest"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mendersoftware/go-lib-micro/log"
	u "github.com/mendersoftware/go-lib-micro/rest_utils"
	"github.com/pkg/errors"

	"github.com/mendersoftware/tours/features"
	"github.com/mendersoftware/tours/inv"
	"github.com/mendersoftware/tours/model"
	"github.com/mendersoftware/tours/store"
	"github.com/mendersoftware/tours/utils"
)

const (
	uriTours         = "/api/v1/tours"
	uriTour          = "/api/v1/tours/:id"
	uriToursTopCheap = "/api/v1/tours/top-5-cheap"
	uriToursStats    = "/api/v1/tours/tour-stats"
	uriUsers         = "/api/v1/users"
	uriUser          = "/api/v1/users/:id"
	uriHealth        = "/api/v1/health"
)

const (
	topCheapLimit  = "5"
	topCheapSort   = "-ratingsAverage,price"
	topCheapFields = "name,price,ratingsAverage,summary,difficulty"
)

const msgPageNotFound = "This page does not exist"

var ErrPageNotFound = errors.New("page does not exist")

type toursHandlers struct {
	app inv.App
}

// return an ApiHandler for the tours app
func NewToursApiHandlers(app inv.App) ApiHandler {
	return &toursHandlers{
		app: app,
	}
}

func (h *toursHandlers) GetApp() (rest.App, error) {
	// static paths go before uriTour, the router picks the first
	// defined route among the matching ones
	routes := []*rest.Route{
		rest.Get(uriToursTopCheap, h.AliasTopToursHandler(h.GetToursHandler)),
		rest.Get(uriToursStats, h.GetTourStatsHandler),
		rest.Get(uriTours, h.GetToursHandler),
		rest.Post(uriTours, h.CreateTourHandler),
		rest.Get(uriTour, h.GetTourHandler),
		rest.Patch(uriTour, h.UpdateTourHandler),
		rest.Delete(uriTour, h.DeleteTourHandler),

		rest.Get(uriUsers, RouteNotDefinedHandler),
		rest.Post(uriUsers, RouteNotDefinedHandler),
		rest.Get(uriUser, RouteNotDefinedHandler),
		rest.Patch(uriUser, RouteNotDefinedHandler),
		rest.Delete(uriUser, RouteNotDefinedHandler),

		rest.Get(uriHealth, h.HealthCheckHandler),
	}

	app, err := rest.MakeRouter(
		// augment routes with OPTIONS handler
		AutogenOptionsRoutes(routes, AllowHeaderOptionsGenerator)...,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create router")
	}

	return app, nil
}

// AliasTopToursHandler forces the query of the five best rated cheap
// tours and hands the request over to next.
func (h *toursHandlers) AliasTopToursHandler(next rest.HandlerFunc) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		q := r.URL.Query()
		q.Set(features.ParamLimit, topCheapLimit)
		q.Set(features.ParamSort, topCheapSort)
		q.Set(features.ParamFields, topCheapFields)
		r.URL.RawQuery = q.Encode()

		next(w, r)
	}
}

func (h *toursHandlers) GetToursHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	params := r.URL.Query()
	query := features.New(&store.ListQuery{}, params).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Query()

	tours, totalCount, err := h.app.ListTours(ctx, *query)
	if err != nil {
		u.RestErrWithLogInternal(w, r, l, err)
		return
	}

	page := query.Pagination
	if _, ok := params[features.ParamPage]; ok &&
		page.Skip > 0 && page.Skip >= totalCount {
		u.RestErrWithLogMsg(w, r, l,
			errors.Wrapf(ErrPageNotFound, "skip %d, total %d", page.Skip, totalCount),
			http.StatusNotFound, msgPageNotFound)
		return
	}

	hasNext := totalCount > page.Page*page.Limit
	links := utils.MakePageLinkHdrs(r, page.Page, page.Limit, hasNext)
	for _, l := range links {
		w.Header().Add(utils.HdrLink, l)
	}
	// the response writer will ensure the header name is in Kebab-Pascal-Case
	w.Header().Add(utils.HdrTotalCount, strconv.Itoa(totalCount))
	_ = w.WriteJson(NewToursResponse(tours))
}

func (h *toursHandlers) GetTourHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	tour, err := h.app.GetTour(ctx, r.PathParam("id"))
	if err != nil {
		restErrWithLog(w, r, l, err)
		return
	}

	_ = w.WriteJson(NewTourResponse(tour))
}

func (h *toursHandlers) CreateTourHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	tour, err := parseTour(r)
	if err != nil {
		u.RestErrWithLog(w, r, l, err, http.StatusBadRequest)
		return
	}

	err = h.app.CreateTour(ctx, tour)
	if err != nil {
		restErrWithLog(w, r, l, err)
		return
	}

	location := utils.BuildURL(r, uriTour, map[string]string{":id": tour.ID})
	w.Header().Add("Location", location.String())
	w.WriteHeader(http.StatusCreated)
	_ = w.WriteJson(NewTourResponse(tour))
}

func (h *toursHandlers) UpdateTourHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	update, err := parseTourUpdate(r)
	if err != nil {
		u.RestErrWithLog(w, r, l, err, http.StatusBadRequest)
		return
	}

	tour, err := h.app.UpdateTour(ctx, r.PathParam("id"), update)
	if err != nil {
		restErrWithLog(w, r, l, err)
		return
	}

	_ = w.WriteJson(NewTourResponse(tour))
}

func (h *toursHandlers) DeleteTourHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	err := h.app.DeleteTour(ctx, r.PathParam("id"))
	if err != nil && err != store.ErrTourNotFound {
		u.RestErrWithLogInternal(w, r, l, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *toursHandlers) GetTourStatsHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	stats, err := h.app.GetTourStats(ctx)
	if err != nil {
		u.RestErrWithLogInternal(w, r, l, err)
		return
	}

	_ = w.WriteJson(NewTourStatsResponse(stats))
}

func (h *toursHandlers) HealthCheckHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	err := h.app.HealthCheck(ctx)
	if err != nil {
		u.RestErrWithLog(w, r, l, err, http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseTour(r *rest.Request) (*model.Tour, error) {
	tour := model.Tour{}

	//decode body
	err := r.DecodeJsonPayload(&tour)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode request body")
	}

	return &tour, nil
}

func parseTourUpdate(r *rest.Request) (*model.TourUpdate, error) {
	update := model.TourUpdate{}

	err := r.DecodeJsonPayload(&update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode request body")
	}

	return &update, nil
}

// restErrWithLog maps app errors to response codes; anything unknown
// is an internal error.
func restErrWithLog(w rest.ResponseWriter, r *rest.Request, l *log.Logger, err error) {
	cause := errors.Cause(err)
	switch cause {
	case store.ErrTourNotFound:
		u.RestErrWithLog(w, r, l, err, http.StatusNotFound)
		return
	case store.ErrDuplicateTour:
		u.RestErrWithLog(w, r, l, err, http.StatusConflict)
		return
	case model.ErrEmptyUpdate:
		u.RestErrWithLog(w, r, l, err, http.StatusBadRequest)
		return
	}
	if _, ok := cause.(validation.Errors); ok {
		u.RestErrWithLog(w, r, l, err, http.StatusBadRequest)
		return
	}
	u.RestErrWithLogInternal(w, r, l, err)
}
