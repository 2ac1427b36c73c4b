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
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	api_http "github.com/mendersoftware/tours/api/http"
	"github.com/mendersoftware/tours/inv"
	"github.com/mendersoftware/tours/store"
)

func SetupAPI(stacktype string) (*rest.Api, error) {
	api := rest.NewApi()
	if err := SetupMiddleware(api, stacktype); err != nil {
		return nil, errors.Wrap(err, "failed to setup middleware")
	}

	//this will override the framework's error resp to the desired one:
	// {"error": "msg"}
	// instead of:
	// {"Error": "msg"}
	rest.ErrorFieldName = "error"

	return api, nil
}

// MakeHandler wires the tours API on top of the given datastore.
func MakeHandler(c config.Reader, db store.DataStore) (http.Handler, error) {
	app := inv.NewApp(db)

	toursapi := api_http.NewToursApiHandlers(app)

	api, err := SetupAPI(c.GetString(SettingMiddleware))
	if err != nil {
		return nil, errors.Wrap(err, "API setup failed")
	}

	apph, err := toursapi.GetApp()
	if err != nil {
		return nil, errors.Wrap(err, "tours API handlers setup failed")
	}
	api.SetApp(apph)

	return api.MakeHandler(), nil
}

func RunServer(c config.Reader, db store.DataStore) error {

	l := log.New(log.Ctx{})

	handler, err := MakeHandler(c, db)
	if err != nil {
		return err
	}

	addr := c.GetString(SettingListen)
	l.Printf("listening on %s", addr)

	return http.ListenAndServe(addr, handler)
}
