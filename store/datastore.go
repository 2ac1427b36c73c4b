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

package store

import (
	"context"
	"errors"

	"github.com/mendersoftware/tours/model"
)

var (
	// tour not found
	ErrTourNotFound = errors.New("tour not found")

	// ErrDuplicateTour is returned when a tour name is already taken.
	ErrDuplicateTour = errors.New("tour with the same name already exists")
)

//go:generate ../utils/mockgen.sh
type DataStore interface {
	Ping(ctx context.Context) error

	// GetTours executes the list query, returning the requested page
	// and the total number of tours matching the filter.
	GetTours(ctx context.Context, q ListQuery) ([]model.Tour, int, error)

	// find a tour with given `id`, returns the tour or nil,
	// if tour was not found, error and returned tour are nil
	GetTour(ctx context.Context, id string) (*model.Tour, error)

	InsertTour(ctx context.Context, tour *model.Tour) error

	// InsertTours inserts tours in bulk, returning the number inserted.
	InsertTours(ctx context.Context, tours []model.Tour) (int, error)

	// UpdateTour applies a partial update and returns the updated tour.
	UpdateTour(ctx context.Context, id string, update *model.TourUpdate) (*model.Tour, error)

	DeleteTour(ctx context.Context, id string) error

	// DeleteTours removes every tour, returning the number removed.
	DeleteTours(ctx context.Context) (int64, error)

	// GetTourStats groups tours rated at least minRating by difficulty.
	GetTourStats(ctx context.Context, minRating float64) ([]model.TourStats, error)

	Migrate(ctx context.Context, version string) error

	WithAutomigrate() DataStore
}
