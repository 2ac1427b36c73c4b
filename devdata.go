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
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/mendersoftware/tours/model"
)

const fieldStartDates = "startDates"

// LoadTours reads a list of tours from a JSON or YAML file.
func LoadTours(path string) ([]model.Tour, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open data file")
	}
	defer f.Close()

	return DecodeTours(f)
}

// DecodeTours decodes a list of tours. JSON is a subset of YAML, so both
// formats go through the YAML decoder; the result is converted through
// JSON so that the tour's json field names apply. Start dates may be
// RFC 3339 timestamps or plain dates (UTC midnight) in either format.
func DecodeTours(r io.Reader) ([]model.Tour, error) {
	var raw []interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return []model.Tour{}, nil
		}
		return nil, errors.Wrap(err, "failed to parse data file")
	}

	for i, item := range raw {
		if err := normalizeStartDates(item); err != nil {
			return nil, errors.Wrapf(err, "invalid tour at index %d", i)
		}
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert data file")
	}

	tours := []model.Tour{}
	if err := json.Unmarshal(buf, &tours); err != nil {
		return nil, errors.Wrap(err, "invalid tour in data file")
	}
	return tours, nil
}

func normalizeStartDates(item interface{}) error {
	tour, ok := item.(map[string]interface{})
	if !ok {
		return nil
	}
	dates, ok := tour[fieldStartDates].([]interface{})
	if !ok {
		return nil
	}
	for i, d := range dates {
		t, err := cast.ToTimeE(d)
		if err != nil {
			return errors.Wrap(err, "invalid start date")
		}
		dates[i] = t.UTC()
	}
	return nil
}
