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
	"github.com/mendersoftware/tours/model"
)

const StatusSuccess = "success"

// ResponseDto is the envelope of every successful response.
type ResponseDto struct {
	Status  string      `json:"status"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data"`
}

type ToursDto struct {
	Tours []model.Tour `json:"tours"`
}

type TourDto struct {
	Tour *model.Tour `json:"tour"`
}

func NewToursResponse(tours []model.Tour) *ResponseDto {
	if tours == nil {
		tours = []model.Tour{}
	}
	results := len(tours)
	return &ResponseDto{
		Status:  StatusSuccess,
		Results: &results,
		Data:    ToursDto{Tours: tours},
	}
}

func NewTourResponse(tour *model.Tour) *ResponseDto {
	return &ResponseDto{
		Status: StatusSuccess,
		Data:   TourDto{Tour: tour},
	}
}

func NewTourStatsResponse(stats []model.TourStats) *ResponseDto {
	if stats == nil {
		stats = []model.TourStats{}
	}
	return &ResponseDto{
		Status: StatusSuccess,
		Data:   stats,
	}
}
