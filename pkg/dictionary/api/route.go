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
	"net/http"

	"github.com/iammonem/mojam/pkg/dictionary/repository"
	"github.com/iammonem/mojam/pkg/utils/httputil/response"
	"github.com/iammonem/mojam/pkg/utils/route"
)

func (a *DictionaryAPI) AddToWebService(rg *route.Group) {
	idParam := route.PathParameter("id", "document id")

	rg.AddRoutes(
		route.GET("/").To(a.Welcome).Doc("welcome message").Response(""),
	)
	rg.AddSubGroup(
		route.NewGroup("/api").
			Parameters(
				route.HeaderParameter("Accept-Language", "language of error messages, ar by default").Optional(),
				route.HeaderParameter("X-Request-Id", "echoed back, generated when absent").Optional(),
			).
			AddSubGroup(
				route.NewGroup("/meanings").Tag("meanings").
					AddRoutes(
						route.GET("").To(a.ListMainMeanings).Doc("list main meanings").
							Parameters(route.QueryParameter("letter", "first letter").Optional()).
							Response([]repository.MainMeaning{}),
						route.GET("/letter/{letter}").To(a.ListMainMeanings).Doc("list main meanings of a letter").
							Parameters(route.PathParameter("letter", "first letter")).
							Response([]repository.MainMeaning{}),
						route.GET("/{id}").To(a.GetMainMeaning).Doc("get main meaning").
							Parameters(idParam).
							Response(repository.MainMeaning{}),
						route.POST("").To(a.CreateMainMeaning).Doc("create main meaning").
							Parameters(route.BodyParameter("meaning", MainMeaningPayload{})).
							ResponseWithCode(http.StatusCreated, repository.MainMeaning{}),
						route.PUT("/{id}").To(a.UpdateMainMeaning).Doc("update main meaning").
							Parameters(idParam, route.BodyParameter("meaning", MainMeaningPatch{})).
							Response(repository.MainMeaning{}),
						route.DELETE("/{id}").To(a.DeleteMainMeaning).Doc("delete main meaning").
							Parameters(idParam).
							Response(response.Message{}),
					),
				route.NewGroup("/submeanings").Tag("submeanings").
					AddRoutes(
						route.GET("").To(a.ListSubMeanings).Doc("list sub meanings").
							Parameters(route.QueryParameter("mainMeaning", "main meaning id").Optional()).
							Response([]repository.SubMeaningView{}),
						route.GET("/main/{mainMeaning}").To(a.ListSubMeanings).Doc("list sub meanings of a main meaning").
							Parameters(route.PathParameter("mainMeaning", "main meaning id")).
							Response([]repository.SubMeaningView{}),
						route.GET("/{id}").To(a.GetSubMeaning).Doc("get sub meaning").
							Parameters(idParam).
							Response(repository.SubMeaningView{}),
						route.POST("").To(a.CreateSubMeaning).Doc("create sub meaning").
							Parameters(route.BodyParameter("submeaning", SubMeaningPayload{})).
							ResponseWithCode(http.StatusCreated, repository.SubMeaning{}),
						route.PUT("/{id}").To(a.UpdateSubMeaning).Doc("update sub meaning").
							Parameters(idParam, route.BodyParameter("submeaning", SubMeaningPatch{})).
							Response(repository.SubMeaning{}),
						route.DELETE("/{id}").To(a.DeleteSubMeaning).Doc("delete sub meaning").
							Parameters(idParam).
							Response(response.Message{}),
					),
				route.NewGroup("/references").Tag("references").
					AddRoutes(
						route.GET("").To(a.ListReferences).Doc("list references").
							Parameters(
								route.QueryParameter("mainMeaning", "main meaning id").Optional(),
								route.QueryParameter("subMeaning", "sub meaning id").Optional(),
								route.QueryParameter("type", "poetry, quran or hadith").Optional(),
							).
							Response([]repository.ReferenceView{}),
						route.GET("/search").To(a.SearchReferences).Doc("search references").
							Parameters(
								route.QueryParameter("query", "text to look for, q is accepted too"),
								route.QueryParameter("type", "poetry, quran or hadith").Optional(),
							).
							Response([]repository.ReferenceView{}),
						route.GET("/submeaning/{subMeaning}").To(a.ListReferences).Doc("list references of a sub meaning").
							Parameters(route.PathParameter("subMeaning", "sub meaning id")).
							Response([]repository.ReferenceView{}),
						route.GET("/{id}").To(a.GetReference).Doc("get reference").
							Parameters(idParam).
							Response(repository.ReferenceView{}),
						route.POST("").To(a.CreateReference).Doc("create reference").
							Parameters(route.BodyParameter("reference", ReferencePayload{})).
							ResponseWithCode(http.StatusCreated, repository.Reference{}),
						route.PUT("/{id}").To(a.UpdateReference).Doc("update reference, comments are ignored").
							Parameters(idParam, route.BodyParameter("reference", ReferencePatch{})).
							Response(repository.Reference{}),
						route.DELETE("/{id}").To(a.DeleteReference).Doc("delete reference").
							Parameters(idParam).
							Response(response.Message{}),
						route.PUT("/{id}/like").To(a.ToggleLike).Doc("like or dislike a reference").
							Parameters(idParam, route.BodyParameter("reaction", ReactionPayload{})).
							Response(repository.Reaction{}),
						route.POST("/{id}/comments").To(a.AddComment).Doc("comment on a reference").
							Parameters(idParam, route.BodyParameter("comment", CommentPayload{})).
							ResponseWithCode(http.StatusCreated, repository.Comment{}),
						route.POST("/{id}/comments/{comment}/replies").To(a.AddReply).Doc("reply to a comment").
							Parameters(
								idParam,
								route.PathParameter("comment", "comment id"),
								route.BodyParameter("reply", CommentPayload{}),
							).
							ResponseWithCode(http.StatusCreated, repository.Reply{}),
					),
			),
	)
}
