// Copyright 2022 The kubegems.io Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package route

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/stretchr/testify/assert"
)

func sampleFunc(req *restful.Request, resp *restful.Response) {
	_, _ = resp.Write([]byte(req.Request.Method + " " + req.SelectedRoutePath()))
}

type sampleEntry struct {
	Title  string `json:"title"`
	Letter string `json:"letter"`
}

func sampleTree() *Tree {
	return &Tree{
		Group: NewGroup("").
			AddRoutes(GET("/").To(sampleFunc)).
			AddSubGroup(
				NewGroup("/api").
					AddSubGroup(
						NewGroup("/entries").Tag("entries").
							AddRoutes(
								GET("").To(sampleFunc).Parameters(QueryParameter("letter", "first letter").Optional()),
								POST("").To(sampleFunc).
									Parameters(BodyParameter("entry", sampleEntry{})).
									ResponseWithCode(http.StatusCreated, sampleEntry{}),
								GET("/{id}").To(sampleFunc).Parameters(PathParameter("id", "entry id")),
								GET("/search").To(sampleFunc),
							),
					),
			),
	}
}

func TestTree_AddToWebService(t *testing.T) {
	ws := &restful.WebService{}
	sampleTree().AddToWebService(ws)

	got := []string{}
	for _, route := range ws.Routes() {
		got = append(got, route.Method+" "+route.Path)
	}
	sort.Strings(got)
	assert.Equal(t, []string{
		"GET /",
		"GET /api/entries",
		"GET /api/entries/search",
		"GET /api/entries/{id}",
		"POST /api/entries",
	}, got)

	for _, route := range ws.Routes() {
		if route.Method == http.MethodPost {
			assert.Contains(t, route.ResponseErrors, http.StatusCreated)
		}
	}
}

func TestTree_StaticSegmentWins(t *testing.T) {
	ws := &restful.WebService{}
	sampleTree().AddToWebService(ws)
	c := restful.NewContainer()
	c.Add(ws)

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/entries/search", nil))
	assert.Equal(t, "GET /api/entries/search", rec.Body.String())

	rec = httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/entries/abc", nil))
	assert.Equal(t, "GET /api/entries/{id}", rec.Body.String())
}

func TestBuildOpenAPIWebService(t *testing.T) {
	ws := &restful.WebService{}
	sampleTree().AddToWebService(ws)
	c := restful.NewContainer()
	c.Add(ws)
	c.Add(BuildOpenAPIWebService(c.RegisteredWebServices(), "/docs.json", nil))

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/entries/{id}"`)
	assert.Contains(t, rec.Body.String(), `"entries"`)
}

func TestTree_GroupHeaderParameter(t *testing.T) {
	tree := &Tree{
		Group: NewGroup("").
			AddRoutes(GET("/").To(sampleFunc)).
			AddSubGroup(
				NewGroup("/api").
					Parameters(HeaderParameter("Accept-Language", "language").Optional()).
					AddSubGroup(
						NewGroup("/entries").AddRoutes(GET("/{id}").To(sampleFunc).Parameters(PathParameter("id", "entry id"))),
					),
			),
	}
	ws := &restful.WebService{}
	tree.AddToWebService(ws)

	headers := map[string][]restful.ParameterData{}
	for _, route := range ws.Routes() {
		for _, p := range route.ParameterDocs {
			if data := p.Data(); data.Kind == restful.HeaderParameterKind {
				headers[route.Path] = append(headers[route.Path], data)
			}
		}
	}
	assert.Empty(t, headers["/"])
	if assert.Len(t, headers["/api/entries/{id}"], 1) {
		assert.Equal(t, "Accept-Language", headers["/api/entries/{id}"][0].Name)
		assert.False(t, headers["/api/entries/{id}"][0].Required)
	}
}
