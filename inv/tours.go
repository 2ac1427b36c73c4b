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

package inv

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/mendersoftware/tours/model"
	"github.com/mendersoftware/tours/store"
)

// StatsMinRating is the lowest rating of a tour counted in the stats.
const StatsMinRating = 4.5

//go:generate ../utils/mockgen.sh

// this tours service interface
type App interface {
	HealthCheck(ctx context.Context) error
	ListTours(ctx context.Context, q store.ListQuery) ([]model.Tour, int, error)
	GetTour(ctx context.Context, id string) (*model.Tour, error)
	CreateTour(ctx context.Context, tour *model.Tour) error
	UpdateTour(ctx context.Context, id string, update *model.TourUpdate) (*model.Tour, error)
	DeleteTour(ctx context.Context, id string) error
	GetTourStats(ctx context.Context) ([]model.TourStats, error)
	ImportTours(ctx context.Context, tours []model.Tour) (int, error)
	DeleteAllTours(ctx context.Context) (int64, error)
}

type tours struct {
	db  store.DataStore
	now func() time.Time
}

func NewApp(d store.DataStore) App {
	return &tours{db: d, now: time.Now}
}

func (t *tours) HealthCheck(ctx context.Context) error {
	err := t.db.Ping(ctx)
	if err != nil {
		return errors.Wrap(err, "error reaching MongoDB")
	}
	return nil
}

func (t *tours) ListTours(ctx context.Context, q store.ListQuery) ([]model.Tour, int, error) {
	res, totalCount, err := t.db.GetTours(ctx, q)
	if err != nil {
		return nil, -1, errors.Wrap(err, "failed to fetch tours")
	}
	return res, totalCount, nil
}

func (t *tours) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	tour, err := t.db.GetTour(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tour")
	}
	if tour == nil {
		return nil, store.ErrTourNotFound
	}
	return tour, nil
}

// CreateTour stores a new tour. Identity, creation time and version are
// owned by the service and overwritten.
func (t *tours) CreateTour(ctx context.Context, tour *model.Tour) error {
	if tour == nil {
		return errors.New("no tour given")
	}
	tour.ID = ""
	tour.CreatedAt = nil
	tour.Version = nil
	tour.ApplyDefaults(t.now())

	if err := tour.Validate(); err != nil {
		return err
	}

	err := t.db.InsertTour(ctx, tour)
	switch {
	case err == store.ErrDuplicateTour:
		return err
	case err != nil:
		return errors.Wrap(err, "failed to add tour")
	}
	return nil
}

func (t *tours) UpdateTour(
	ctx context.Context,
	id string,
	update *model.TourUpdate,
) (*model.Tour, error) {
	if update == nil {
		return nil, model.ErrEmptyUpdate
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	tour, err := t.db.UpdateTour(ctx, id, update)
	switch {
	case err == store.ErrTourNotFound, err == store.ErrDuplicateTour:
		return nil, err
	case err != nil:
		return nil, errors.Wrap(err, "failed to update tour")
	}
	return tour, nil
}

func (t *tours) DeleteTour(ctx context.Context, id string) error {
	err := t.db.DeleteTour(ctx, id)
	switch {
	case err == store.ErrTourNotFound:
		return err
	case err != nil:
		return errors.Wrap(err, "failed to delete tour")
	}
	return nil
}

func (t *tours) GetTourStats(ctx context.Context) ([]model.TourStats, error) {
	stats, err := t.db.GetTourStats(ctx, StatsMinRating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute tour stats")
	}
	return stats, nil
}

// ImportTours bulk inserts tours loaded from a data file. Tours keep the
// identity they were exported with.
func (t *tours) ImportTours(ctx context.Context, in []model.Tour) (int, error) {
	l := log.FromContext(ctx)

	now := t.now()
	for i := range in {
		in[i].ApplyDefaults(now)
		if err := in[i].Validate(); err != nil {
			return 0, errors.Wrapf(err, "invalid tour at index %d", i)
		}
	}

	n, err := t.db.InsertTours(ctx, in)
	if err != nil {
		return n, errors.Wrap(err, "failed to import tours")
	}
	l.Infof("imported %d tours", n)
	return n, nil
}

func (t *tours) DeleteAllTours(ctx context.Context) (int64, error) {
	l := log.FromContext(ctx)

	n, err := t.db.DeleteTours(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete tours")
	}
	l.Infof("deleted %d tours", n)
	return n, nil
}
