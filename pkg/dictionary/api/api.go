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
	"github.com/emicklei/go-restful/v3"
	"github.com/iammonem/mojam/pkg/i18n"
	"github.com/iammonem/mojam/pkg/utils/httputil/request"
	"github.com/iammonem/mojam/pkg/utils/httputil/response"
)

type DictionaryAPI struct {
	Dictionary *Dictionary
}

func NewDictionaryAPI(dictionary *Dictionary) *DictionaryAPI {
	return &DictionaryAPI{Dictionary: dictionary}
}

func (a *DictionaryAPI) Welcome(req *restful.Request, resp *restful.Response) {
	response.OK(resp, i18n.Sprintf(req.Request.Context(), "welcome to the dictionary api"))
}

// readBody decodes the request body into into, false when it has answered
// the request already.
func readBody(req *restful.Request, resp *restful.Response, into interface{}) bool {
	if err := request.Body(req.Request, into); err != nil {
		response.ErrorResponse(resp, validationError(req.Request.Context(), "invalid data"))
		return false
	}
	return true
}

func deleted(req *restful.Request, resp *restful.Response, key string) {
	response.OK(resp, response.Message{Message: i18n.Sprintf(req.Request.Context(), key)})
}

func (a *DictionaryAPI) ListMainMeanings(req *restful.Request, resp *restful.Response) {
	letter := req.PathParameter("letter")
	if letter == "" {
		letter = request.Query(req.Request, "letter", "")
	}
	list, err := a.Dictionary.ListMainMeanings(req.Request.Context(), letter)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, list)
}

func (a *DictionaryAPI) GetMainMeaning(req *restful.Request, resp *restful.Response) {
	meaning, err := a.Dictionary.GetMainMeaning(req.Request.Context(), req.PathParameter("id"))
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, meaning)
}

func (a *DictionaryAPI) CreateMainMeaning(req *restful.Request, resp *restful.Response) {
	payload := MainMeaningPayload{}
	if !readBody(req, resp, &payload) {
		return
	}
	meaning, err := a.Dictionary.CreateMainMeaning(req.Request.Context(), payload)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.Created(resp, meaning)
}

func (a *DictionaryAPI) UpdateMainMeaning(req *restful.Request, resp *restful.Response) {
	patch := MainMeaningPatch{}
	if !readBody(req, resp, &patch) {
		return
	}
	meaning, err := a.Dictionary.UpdateMainMeaning(req.Request.Context(), req.PathParameter("id"), patch)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, meaning)
}

func (a *DictionaryAPI) DeleteMainMeaning(req *restful.Request, resp *restful.Response) {
	if err := a.Dictionary.DeleteMainMeaning(req.Request.Context(), req.PathParameter("id")); err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	deleted(req, resp, "main meaning deleted")
}

func (a *DictionaryAPI) ListSubMeanings(req *restful.Request, resp *restful.Response) {
	parent := req.PathParameter("mainMeaning")
	if parent == "" {
		parent = request.Query(req.Request, "mainMeaning", "")
	}
	list, err := a.Dictionary.ListSubMeanings(req.Request.Context(), parent)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, list)
}

func (a *DictionaryAPI) GetSubMeaning(req *restful.Request, resp *restful.Response) {
	sub, err := a.Dictionary.GetSubMeaning(req.Request.Context(), req.PathParameter("id"))
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, sub)
}

func (a *DictionaryAPI) CreateSubMeaning(req *restful.Request, resp *restful.Response) {
	payload := SubMeaningPayload{}
	if !readBody(req, resp, &payload) {
		return
	}
	sub, err := a.Dictionary.CreateSubMeaning(req.Request.Context(), payload)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.Created(resp, sub)
}

func (a *DictionaryAPI) UpdateSubMeaning(req *restful.Request, resp *restful.Response) {
	patch := SubMeaningPatch{}
	if !readBody(req, resp, &patch) {
		return
	}
	sub, err := a.Dictionary.UpdateSubMeaning(req.Request.Context(), req.PathParameter("id"), patch)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, sub)
}

func (a *DictionaryAPI) DeleteSubMeaning(req *restful.Request, resp *restful.Response) {
	if err := a.Dictionary.DeleteSubMeaning(req.Request.Context(), req.PathParameter("id")); err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	deleted(req, resp, "sub meaning deleted")
}

func (a *DictionaryAPI) ListReferences(req *restful.Request, resp *restful.Response) {
	filter := ReferenceFilter{
		MainMeaning: request.Query(req.Request, "mainMeaning", ""),
		SubMeaning:  req.PathParameter("subMeaning"),
		Type:        request.Query(req.Request, "type", ""),
	}
	if filter.SubMeaning == "" {
		filter.SubMeaning = request.Query(req.Request, "subMeaning", "")
	}
	list, err := a.Dictionary.ListReferences(req.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, list)
}

func (a *DictionaryAPI) SearchReferences(req *restful.Request, resp *restful.Response) {
	query := request.Query(req.Request, "query", "", "q")
	list, err := a.Dictionary.SearchReferences(req.Request.Context(), query, request.Query(req.Request, "type", ""))
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, list)
}

func (a *DictionaryAPI) GetReference(req *restful.Request, resp *restful.Response) {
	ref, err := a.Dictionary.GetReference(req.Request.Context(), req.PathParameter("id"))
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, ref)
}

func (a *DictionaryAPI) CreateReference(req *restful.Request, resp *restful.Response) {
	payload := ReferencePayload{}
	if !readBody(req, resp, &payload) {
		return
	}
	ref, err := a.Dictionary.CreateReference(req.Request.Context(), payload)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.Created(resp, ref)
}

func (a *DictionaryAPI) UpdateReference(req *restful.Request, resp *restful.Response) {
	patch := ReferencePatch{}
	if !readBody(req, resp, &patch) {
		return
	}
	ref, err := a.Dictionary.UpdateReference(req.Request.Context(), req.PathParameter("id"), patch)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, ref)
}

func (a *DictionaryAPI) DeleteReference(req *restful.Request, resp *restful.Response) {
	if err := a.Dictionary.DeleteReference(req.Request.Context(), req.PathParameter("id")); err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	deleted(req, resp, "reference deleted")
}

func (a *DictionaryAPI) ToggleLike(req *restful.Request, resp *restful.Response) {
	payload := ReactionPayload{}
	if !readBody(req, resp, &payload) {
		return
	}
	reaction, err := a.Dictionary.ToggleLike(req.Request.Context(), req.PathParameter("id"), payload.Action)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.OK(resp, reaction)
}

func (a *DictionaryAPI) AddComment(req *restful.Request, resp *restful.Response) {
	payload := CommentPayload{}
	if !readBody(req, resp, &payload) {
		return
	}
	comment, err := a.Dictionary.AddComment(req.Request.Context(), req.PathParameter("id"), payload)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.Created(resp, comment)
}

func (a *DictionaryAPI) AddReply(req *restful.Request, resp *restful.Response) {
	payload := CommentPayload{}
	if !readBody(req, resp, &payload) {
		return
	}
	reply, err := a.Dictionary.AddReply(req.Request.Context(), req.PathParameter("id"), req.PathParameter("comment"), payload)
	if err != nil {
		response.ErrorResponse(resp, err)
		return
	}
	response.Created(resp, reply)
}
