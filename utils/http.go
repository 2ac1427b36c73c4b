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

package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
)

const (
	PageName  = "page"
	LimitName = "limit"

	HdrTotalCount = "X-Total-Count"
	HdrLink       = "Link"
)

// build URL using request 'r' and template, replace path params with
// elements from 'params' using lexical match as in strings.Replace()
func BuildURL(r *rest.Request, template string, params map[string]string) *url.URL {
	url := r.BaseUrl()

	path := template
	for k, v := range params {
		path = strings.Replace(path, k, v, -1)
	}
	url.Path = path

	return url
}

// MakeLink returns a Link header value pointing at the given page of the
// request's resource. All other query parameters are preserved.
func MakeLink(rel string, r *rest.Request, page, limit int) string {
	u := r.BaseUrl()
	u.Path = r.URL.Path

	q := r.URL.Query()
	q.Set(PageName, strconv.Itoa(page))
	q.Set(LimitName, strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	return fmt.Sprintf("<%s>; rel=\"%s\"", u.String(), rel)
}

// MakePageLinkHdrs returns the prev, next and first Link headers for a
// paginated listing.
func MakePageLinkHdrs(r *rest.Request, page, limit int, hasNext bool) []string {
	var links []string

	if page > 1 {
		links = append(links, MakeLink("prev", r, page-1, limit))
	}
	if hasNext {
		links = append(links, MakeLink("next", r, page+1, limit))
	}
	links = append(links, MakeLink("first", r, 1, limit))

	return links
}
