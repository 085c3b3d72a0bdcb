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

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/iammonem/mojam/pkg/dictionary/repository"
	"github.com/iammonem/mojam/pkg/i18n"
	"github.com/iammonem/mojam/pkg/utils/httputil/response"
	"github.com/iammonem/mojam/pkg/utils/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testServer struct {
	t         *testing.T
	container *restful.Container
	lang      string
}

func newTestServer(t *testing.T, d *Dictionary) *testServer {
	rg := route.NewGroup("")
	NewDictionaryAPI(d).AddToWebService(rg)

	ws := new(restful.WebService)
	ws.Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	(&route.Tree{Group: rg}).AddToWebService(ws)

	c := restful.NewContainer()
	c.Filter(i18n.SetLang)
	c.Add(ws)
	return &testServer{t: t, container: c}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", restful.MIME_JSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if s.lang != "" {
		req.Header.Set("Accept-Language", s.lang)
	}
	rec := httptest.NewRecorder()
	s.container.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var into T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &into), rec.Body.String())
	return into
}

func TestAPI_Welcome(t *testing.T) {
	s := newTestServer(t, newMemoryDictionary(nil).Dictionary)

	rec := s.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "مرحباً بك")

	s.lang = "en-US,en;q=0.9"
	rec = s.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to the encyclopedic dictionary")
}

func TestAPI_Scenario(t *testing.T) {
	d := newMemoryDictionary(nil)
	s := newTestServer(t, d.Dictionary)

	rec := s.do(http.MethodPost, "/api/meanings", map[string]string{"title": "الصبر", "letter": "ص"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	meaning := decode[repository.MainMeaning](t, rec)
	assert.Equal(t, int64(0), meaning.Count)

	rec = s.do(http.MethodPost, "/api/meanings", map[string]string{"title": "الصبر", "letter": "ص"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "المعنى موجود بالفعل", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodPost, "/api/references", map[string]interface{}{
		"type":        "hadith",
		"content":     "الصبر ضياء",
		"meaning":     "الصبر نور لصاحبه",
		"mainMeaning": meaning.ID.Hex(),
		"narrator":    "أبو مالك الأشعري",
		"tags":        []string{" صبر ", ""},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ref := decode[repository.Reference](t, rec)
	assert.Equal(t, repository.ReferenceTypeHadith, ref.Type)
	assert.Equal(t, []string{"صبر"}, ref.Tags)

	rec = s.do(http.MethodGet, "/api/meanings/"+meaning.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[repository.MainMeaning](t, rec).Count)

	for _, path := range []string{"/api/meanings?letter=" + url.QueryEscape("ص"), "/api/meanings/letter/" + url.PathEscape("ص")} {
		rec = s.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		list := decode[[]repository.MainMeaning](t, rec)
		require.Len(t, list, 1, path)
		assert.Equal(t, "الصبر", list[0].Title)
	}

	rec = s.do(http.MethodGet, "/api/references/"+ref.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, map[string]interface{}{"_id": meaning.ID.Hex(), "title": "الصبر"}, view["mainMeaning"])
	assert.Equal(t, "أبو مالك الأشعري", view["narrator"])
	assert.NotContains(t, view, "poet")

	rec = s.do(http.MethodGet, "/api/references/search?q="+url.QueryEscape("ضياء"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]repository.ReferenceView](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/references/search?query=", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "يرجى تقديم استعلام البحث", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodDelete, "/api/references/"+ref.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "تم حذف الشاهد", decode[response.Message](t, rec).Message)

	rec = s.do(http.MethodGet, "/api/meanings/"+meaning.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), decode[repository.MainMeaning](t, rec).Count)

	s.lang = "en"
	rec = s.do(http.MethodDelete, "/api/references/"+ref.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "reference not found", decode[response.ErrorBody](t, rec).Message)
}

func TestAPI_SubMeanings(t *testing.T) {
	d := newMemoryDictionary(nil)
	s := newTestServer(t, d.Dictionary)

	rec := s.do(http.MethodPost, "/api/meanings", map[string]string{"title": "النية", "letter": "ن"})
	require.Equal(t, http.StatusCreated, rec.Code)
	meaning := decode[repository.MainMeaning](t, rec)

	rec = s.do(http.MethodPost, "/api/submeanings", map[string]string{"title": "إخلاص", "mainMeaning": primitive.NewObjectID().Hex()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "المعنى الرئيسي غير موجود", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodPost, "/api/submeanings", map[string]string{"title": "إخلاص", "mainMeaning": meaning.ID.Hex()})
	require.Equal(t, http.StatusCreated, rec.Code)
	sub := decode[repository.SubMeaning](t, rec)

	for _, path := range []string{"/api/submeanings?mainMeaning=" + meaning.ID.Hex(), "/api/submeanings/main/" + meaning.ID.Hex()} {
		rec = s.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		views := decode[[]repository.SubMeaningView](t, rec)
		require.Len(t, views, 1)
		assert.Equal(t, "النية", views[0].MainMeaning.Title)
	}

	rec = s.do(http.MethodPut, "/api/submeanings/"+sub.ID.Hex(), map[string]string{"description": "وصف"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "وصف", decode[repository.SubMeaning](t, rec).Description)

	rec = s.do(http.MethodPost, "/api/references", map[string]string{
		"content": "c", "meaning": "m", "mainMeaning": meaning.ID.Hex(), "subMeaning": sub.ID.Hex(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/references/submeaning/"+sub.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	views := decode[[]repository.ReferenceView](t, rec)
	require.Len(t, views, 1)
	assert.Equal(t, "إخلاص", views[0].SubMeaning.Title)

	rec = s.do(http.MethodDelete, "/api/submeanings/"+sub.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "تم حذف المعنى الفرعي", decode[response.Message](t, rec).Message)

	rec = s.do(http.MethodGet, "/api/submeanings/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_CommentsAndReactions(t *testing.T) {
	d := newMemoryDictionary(nil)
	s := newTestServer(t, d.Dictionary)

	rec := s.do(http.MethodPost, "/api/meanings", map[string]string{"title": "الكرم", "letter": "ك"})
	require.Equal(t, http.StatusCreated, rec.Code)
	meaning := decode[repository.MainMeaning](t, rec)
	rec = s.do(http.MethodPost, "/api/references", map[string]string{"content": "c", "meaning": "m", "mainMeaning": meaning.ID.Hex()})
	require.Equal(t, http.StatusCreated, rec.Code)
	ref := decode[repository.Reference](t, rec)
	base := "/api/references/" + ref.ID.Hex()

	rec = s.do(http.MethodPut, base+"/like", map[string]string{"action": "like"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likes":1,"dislikes":0}`, rec.Body.String())

	rec = s.do(http.MethodPut, base+"/like", map[string]string{"action": "meh"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, base+"/comments", map[string]string{"user": "علي", "text": "جميل"})
	require.Equal(t, http.StatusCreated, rec.Code)
	comment := decode[repository.Comment](t, rec)

	rec = s.do(http.MethodPost, base+"/comments/"+comment.ID.Hex()+"/replies", map[string]string{"user": "سعد", "text": "صدقت"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, base+"/comments/"+primitive.NewObjectID().Hex()+"/replies", map[string]string{"user": "سعد", "text": "صدقت"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "التعليق غير موجود", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodPut, base, map[string]interface{}{"content": "جديد", "comments": []interface{}{}})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[repository.Reference](t, rec)
	assert.Equal(t, "جديد", updated.Content)
	require.Len(t, updated.Comments, 1)
	assert.Len(t, updated.Comments[0].Replies, 1)
	assert.Equal(t, int64(1), updated.Likes)
}

func TestAPI_InvalidBody(t *testing.T) {
	s := newTestServer(t, newMemoryDictionary(nil).Dictionary)

	req := httptest.NewRequest(http.MethodPost, "/api/meanings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", restful.MIME_JSON)
	rec := httptest.NewRecorder()
	s.container.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "بيانات غير صالحة", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodPost, "/api/meanings", map[string]string{"title": "x", "letter": "z"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "الحرف z غير صالح", decode[response.ErrorBody](t, rec).Message)
}
