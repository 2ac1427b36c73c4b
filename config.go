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
	"net/url"
	"strings"

	"github.com/mendersoftware/go-lib-micro/config"

	"github.com/mendersoftware/tours/store/mongo"
)

const (
	SettingListen        = "listen"
	SettingListenDefault = ":3000"

	SettingMiddleware        = "middleware"
	SettingMiddlewareDefault = EnvProd

	SettingDb        = "mongo"
	SettingDbDefault = "mongo-tours:27017"

	SettingDbName        = "mongo_dbname"
	SettingDbNameDefault = mongo.DbName

	SettingDbSSL        = "mongo_ssl"
	SettingDbSSLDefault = false

	SettingDbSSLSkipVerify        = "mongo_ssl_skipverify"
	SettingDbSSLSkipVerifyDefault = false

	SettingDbUsername = "mongo_username"
	SettingDbPassword = "mongo_password"

	// replaced by the mongo_password setting in the connection string
	DbPasswordPlaceholder = "<PASSWORD>"
)

var (
	configDefaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingMiddleware, Value: SettingMiddlewareDefault},
		{Key: SettingDb, Value: SettingDbDefault},
		{Key: SettingDbName, Value: SettingDbNameDefault},
		{Key: SettingDbSSL, Value: SettingDbSSLDefault},
		{Key: SettingDbSSLSkipVerify, Value: SettingDbSSLSkipVerifyDefault},
	}
)

func makeDataStoreConfig(c config.Reader) mongo.DataStoreMongoConfig {
	dsConfig := mongo.DataStoreMongoConfig{
		ConnectionString: c.GetString(SettingDb),
		DbName:           c.GetString(SettingDbName),

		SSL:           c.GetBool(SettingDbSSL),
		SSLSkipVerify: c.GetBool(SettingDbSSLSkipVerify),

		Username: c.GetString(SettingDbUsername),
		Password: c.GetString(SettingDbPassword),
	}

	if strings.Contains(dsConfig.ConnectionString, DbPasswordPlaceholder) {
		dsConfig.ConnectionString = strings.Replace(dsConfig.ConnectionString,
			DbPasswordPlaceholder, escapeUserinfo(dsConfig.Password), 1)
		// credentials come from the connection string only
		dsConfig.Username = ""
		dsConfig.Password = ""
	}
	if dsConfig.Username == "" {
		dsConfig.Password = ""
	}
	return dsConfig
}

// escapeUserinfo percent-encodes s for the userinfo part of a mongodb URI,
// which does not decode '+' as a space.
func escapeUserinfo(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
