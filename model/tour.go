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

package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyDifficult = "difficult"

	DefaultRatingsAverage = 4.5
)

var (
	ErrEmptyUpdate = errors.New("no tour fields to update")

	validDifficulties = []interface{}{
		DifficultyEasy,
		DifficultyMedium,
		DifficultyDifficult,
	}
)

// Tour fields are omitted from JSON when empty so that projected
// documents only carry what was selected.
type Tour struct {
	ID              string      `json:"_id" bson:"_id"`
	Name            string      `json:"name,omitempty" bson:"name,omitempty"`
	Duration        int         `json:"duration,omitempty" bson:"duration,omitempty"`
	MaxGroupSize    int         `json:"maxGroupSize,omitempty" bson:"maxGroupSize,omitempty"`
	Difficulty      string      `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	RatingsAverage  float64     `json:"ratingsAverage,omitempty" bson:"ratingsAverage,omitempty"`
	RatingsQuantity int         `json:"ratingsQuantity,omitempty" bson:"ratingsQuantity,omitempty"`
	Price           float64     `json:"price,omitempty" bson:"price,omitempty"`
	PriceDiscount   float64     `json:"priceDiscount,omitempty" bson:"priceDiscount,omitempty"`
	Summary         string      `json:"summary,omitempty" bson:"summary,omitempty"`
	Description     string      `json:"description,omitempty" bson:"description,omitempty"`
	ImageCover      string      `json:"imageCover,omitempty" bson:"imageCover,omitempty"`
	Images          []string    `json:"images,omitempty" bson:"images,omitempty"`
	StartDates      []time.Time `json:"startDates,omitempty" bson:"startDates,omitempty"`
	CreatedAt       *time.Time  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	Version         *int        `json:"__v,omitempty" bson:"__v,omitempty"`
}

func (t Tour) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&t.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&t.Duration, validation.Min(0)),
		validation.Field(&t.MaxGroupSize, validation.Min(0)),
		validation.Field(&t.Difficulty, validation.In(validDifficulties...)),
		validation.Field(&t.RatingsAverage, validation.Min(1.0), validation.Max(5.0)),
		validation.Field(&t.RatingsQuantity, validation.Min(0)),
		validation.Field(&t.PriceDiscount,
			validation.Min(0.0),
			validation.By(discountBelowPrice(t.Price))),
	)
}

// NewID returns a fresh tour identifier.
func NewID() string {
	return uuid.NewString()
}

// ApplyDefaults fills the values the service owns on insert: identity,
// creation time, document version and the default rating.
func (t *Tour) ApplyDefaults(now time.Time) {
	if t.ID == "" {
		t.ID = NewID()
	}
	if t.CreatedAt == nil {
		created := now.UTC().Truncate(time.Millisecond)
		t.CreatedAt = &created
	}
	if t.Version == nil {
		v := 0
		t.Version = &v
	}
	if t.RatingsAverage == 0 {
		t.RatingsAverage = DefaultRatingsAverage
	}
}

// TourUpdate is a partial update; nil fields are left untouched.
type TourUpdate struct {
	Name            *string     `json:"name,omitempty" bson:"name,omitempty"`
	Duration        *int        `json:"duration,omitempty" bson:"duration,omitempty"`
	MaxGroupSize    *int        `json:"maxGroupSize,omitempty" bson:"maxGroupSize,omitempty"`
	Difficulty      *string     `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	RatingsAverage  *float64    `json:"ratingsAverage,omitempty" bson:"ratingsAverage,omitempty"`
	RatingsQuantity *int        `json:"ratingsQuantity,omitempty" bson:"ratingsQuantity,omitempty"`
	Price           *float64    `json:"price,omitempty" bson:"price,omitempty"`
	PriceDiscount   *float64    `json:"priceDiscount,omitempty" bson:"priceDiscount,omitempty"`
	Summary         *string     `json:"summary,omitempty" bson:"summary,omitempty"`
	Description     *string     `json:"description,omitempty" bson:"description,omitempty"`
	ImageCover      *string     `json:"imageCover,omitempty" bson:"imageCover,omitempty"`
	Images          []string    `json:"images,omitempty" bson:"images,omitempty"`
	StartDates      []time.Time `json:"startDates,omitempty" bson:"startDates,omitempty"`
}

func (u TourUpdate) IsEmpty() bool {
	return u.Name == nil && u.Duration == nil && u.MaxGroupSize == nil &&
		u.Difficulty == nil && u.RatingsAverage == nil &&
		u.RatingsQuantity == nil && u.Price == nil && u.PriceDiscount == nil &&
		u.Summary == nil && u.Description == nil && u.ImageCover == nil &&
		u.Images == nil && u.StartDates == nil
}

func (u TourUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	var price float64
	if u.Price != nil {
		price = *u.Price
	}
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.NilOrNotEmpty, validation.Length(1, 128)),
		validation.Field(&u.Price, validation.NilOrNotEmpty, validation.Min(0.0)),
		validation.Field(&u.Duration, validation.Min(0)),
		validation.Field(&u.MaxGroupSize, validation.Min(0)),
		validation.Field(&u.Difficulty, validation.In(validDifficulties...)),
		validation.Field(&u.RatingsAverage, validation.Min(1.0), validation.Max(5.0)),
		validation.Field(&u.RatingsQuantity, validation.Min(0)),
		validation.Field(&u.PriceDiscount,
			validation.Min(0.0),
			validation.By(discountBelowPrice(price))),
	)
}

// discountBelowPrice rejects a discount that is not lower than the
// price. A zero price means the price is not known and is not checked.
func discountBelowPrice(price float64) validation.RuleFunc {
	return func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		discount, _ := v.(float64)
		if price > 0 && discount > 0 && discount >= price {
			return errors.New("discount price should be below the regular price")
		}
		return nil
	}
}

// TourStats is one difficulty bucket of the tour statistics.
type TourStats struct {
	Difficulty string  `json:"_id" bson:"_id"`
	NumTours   int     `json:"numTours" bson:"numTours"`
	NumRatings int     `json:"numRatings" bson:"numRatings"`
	AvgRating  float64 `json:"avgRating" bson:"avgRating"`
	AvgPrice   float64 `json:"avgPrice" bson:"avgPrice"`
	MinPrice   float64 `json:"minPrice" bson:"minPrice"`
	MaxPrice   float64 `json:"maxPrice" bson:"maxPrice"`
}
