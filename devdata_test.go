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
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendersoftware/tours/model"
)

func TestDecodeTours(t *testing.T) {
	startDate := time.Date(2021, time.April, 25, 9, 0, 0, 0, time.UTC)
	startDay := time.Date(2021, time.April, 25, 0, 0, 0, 0, time.UTC)

	testCases := map[string]struct {
		data string

		tours []model.Tour
		err   string
	}{
		"json": {
			data: `[
  {
    "name": "The Forest Hiker",
    "duration": 5,
    "maxGroupSize": 25,
    "difficulty": "easy",
    "ratingsAverage": 4.7,
    "ratingsQuantity": 37,
    "price": 397,
    "summary": "Breathtaking hike through the Canadian Banff National Park",
    "images": ["tour-1-1.jpg", "tour-1-2.jpg"],
    "startDates": ["2021-04-25T09:00:00Z"]
  }
]`,
			tours: []model.Tour{{
				Name:            "The Forest Hiker",
				Duration:        5,
				MaxGroupSize:    25,
				Difficulty:      "easy",
				RatingsAverage:  4.7,
				RatingsQuantity: 37,
				Price:           397,
				Summary:         "Breathtaking hike through the Canadian Banff National Park",
				Images:          []string{"tour-1-1.jpg", "tour-1-2.jpg"},
				StartDates:      []time.Time{startDate},
			}},
		},
		"yaml": {
			data: `
- name: The Sea Explorer
  duration: 7
  difficulty: medium
  price: 497
  startDates:
    - 2021-04-25T09:00:00Z
- _id: 5c88fa8cf4afda39709c2955
  name: The Snow Adventurer
  price: 997
`,
			tours: []model.Tour{
				{
					Name:       "The Sea Explorer",
					Duration:   7,
					Difficulty: "medium",
					Price:      497,
					StartDates: []time.Time{startDate},
				},
				{
					ID:    "5c88fa8cf4afda39709c2955",
					Name:  "The Snow Adventurer",
					Price: 997,
				},
			},
		},
		"date only, json": {
			data:  `[{"name": "The Forest Hiker", "startDates": ["2021-04-25"]}]`,
			tours: []model.Tour{{Name: "The Forest Hiker", StartDates: []time.Time{startDay}}},
		},
		"date only, yaml": {
			data:  "- name: The Forest Hiker\n  startDates: [2021-04-25]\n",
			tours: []model.Tour{{Name: "The Forest Hiker", StartDates: []time.Time{startDay}}},
		},
		"bad start date": {
			data: `[{"name": "The Forest Hiker", "startDates": ["soon"]}]`,
			err:  "invalid tour at index 0: invalid start date",
		},
		"empty": {
			data:  "",
			tours: []model.Tour{},
		},
		"not a list": {
			data: `{"name": "The Forest Hiker"}`,
			err:  "failed to parse data file",
		},
		"wrong field type": {
			data: `[{"name": "The Forest Hiker", "price": "cheap"}]`,
			err:  "invalid tour in data file",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			tours, err := DecodeTours(strings.NewReader(tc.data))
			if tc.err != "" {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tc.err)
				}
				assert.Nil(t, tours)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.tours, tours)
			}
		})
	}
}

func TestLoadTours(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tours.yaml")
	err := os.WriteFile(path, []byte("- name: The Park Camper\n  price: 1497\n"), 0600)
	require.NoError(t, err)

	tours, err := LoadTours(path)
	assert.NoError(t, err)
	assert.Equal(t, []model.Tour{{Name: "The Park Camper", Price: 1497}}, tours)

	_, err = LoadTours(filepath.Join(dir, "missing.json"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "failed to open data file")
	}
}
