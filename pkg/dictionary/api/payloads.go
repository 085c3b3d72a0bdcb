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
	"strings"

	"github.com/iammonem/mojam/pkg/dictionary/repository"
)

type MainMeaningPayload struct {
	Title  string `json:"title" validate:"required"`
	Letter string `json:"letter" validate:"required,letter"`
}

func (p *MainMeaningPayload) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Letter = strings.TrimSpace(p.Letter)
}

// MainMeaningPatch keeps the stored value for empty strings and an absent
// count. An explicit zero count is applied.
type MainMeaningPatch struct {
	Title  string `json:"title"`
	Letter string `json:"letter" validate:"omitempty,letter"`
	Count  *int64 `json:"count" validate:"omitempty,gte=0"`
}

func (p *MainMeaningPatch) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Letter = strings.TrimSpace(p.Letter)
}

func (p *MainMeaningPatch) toUpdate() repository.MainMeaningUpdate {
	return repository.MainMeaningUpdate{
		Title:  nonEmpty(p.Title),
		Letter: nonEmpty(p.Letter),
		Count:  p.Count,
	}
}

type SubMeaningPayload struct {
	Title       string `json:"title" validate:"required"`
	MainMeaning string `json:"mainMeaning" validate:"required,objectid"`
	Description string `json:"description"`
}

func (p *SubMeaningPayload) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.MainMeaning = strings.TrimSpace(p.MainMeaning)
	p.Description = strings.TrimSpace(p.Description)
}

type SubMeaningPatch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       *int64 `json:"count" validate:"omitempty,gte=0"`
}

func (p *SubMeaningPatch) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
}

func (p *SubMeaningPatch) toUpdate() repository.SubMeaningUpdate {
	return repository.SubMeaningUpdate{
		Title:       nonEmpty(p.Title),
		Description: nonEmpty(p.Description),
		Count:       p.Count,
	}
}

// ReferencePayload is the flat wire shape of a new reference, only the
// details of the selected type are kept.
type ReferencePayload struct {
	Type             string   `json:"type" validate:"omitempty,reftype"`
	Content          string   `json:"content" validate:"required"`
	Meaning          string   `json:"meaning" validate:"required"`
	MainMeaning      string   `json:"mainMeaning" validate:"required,objectid"`
	SubMeaning       string   `json:"subMeaning" validate:"omitempty,objectid"`
	Context          string   `json:"context"`
	Tags             []string `json:"tags"`
	Poet             string   `json:"poet"`
	Era              string   `json:"era"`
	Source           string   `json:"source"`
	RevelationReason string   `json:"revelation_reason"`
	Interpretation   string   `json:"interpretation"`
	Narrator         string   `json:"narrator"`
	HadithGrade      string   `json:"hadith_grade"`
	Explanation      string   `json:"explanation"`
}

func (p *ReferencePayload) normalize() {
	for _, s := range []*string{
		&p.Type, &p.Content, &p.Meaning, &p.MainMeaning, &p.SubMeaning, &p.Context,
		&p.Poet, &p.Era, &p.Source, &p.RevelationReason, &p.Interpretation,
		&p.Narrator, &p.HadithGrade, &p.Explanation,
	} {
		*s = strings.TrimSpace(*s)
	}
	p.Tags = trimTags(p.Tags)
}

func (p *ReferencePayload) toReference() repository.Reference {
	typ := repository.ReferenceTypePoetry
	if p.Type != "" {
		typ, _ = repository.ParseReferenceType(p.Type)
	}
	return repository.Reference{
		Type:    typ,
		Content: p.Content,
		Meaning: p.Meaning,
		Context: p.Context,
		Tags:    p.Tags,
		PoetryDetails: repository.PoetryDetails{
			Poet: p.Poet,
			Era:  p.Era,
		},
		QuranDetails: repository.QuranDetails{
			Source:           p.Source,
			RevelationReason: p.RevelationReason,
			Interpretation:   p.Interpretation,
		},
		HadithDetails: repository.HadithDetails{
			Narrator:    p.Narrator,
			HadithGrade: p.HadithGrade,
			Explanation: p.Explanation,
		},
	}
}

// ReferencePatch sets every provided field as is. Comments are not part of
// it, a comments key in the body is dropped while decoding.
type ReferencePatch struct {
	Type             *string   `json:"type" validate:"omitempty,reftype"`
	Content          *string   `json:"content"`
	Meaning          *string   `json:"meaning"`
	MainMeaning      *string   `json:"mainMeaning" validate:"omitempty,objectid"`
	SubMeaning       *string   `json:"subMeaning" validate:"omitempty,objectid"`
	Context          *string   `json:"context"`
	Tags             *[]string `json:"tags"`
	Likes            *int64    `json:"likes" validate:"omitempty,gte=0"`
	Dislikes         *int64    `json:"dislikes" validate:"omitempty,gte=0"`
	Poet             *string   `json:"poet"`
	Era              *string   `json:"era"`
	Source           *string   `json:"source"`
	RevelationReason *string   `json:"revelation_reason"`
	Interpretation   *string   `json:"interpretation"`
	Narrator         *string   `json:"narrator"`
	HadithGrade      *string   `json:"hadith_grade"`
	Explanation      *string   `json:"explanation"`
}

type CommentPayload struct {
	User string `json:"user" validate:"required"`
	Text string `json:"text" validate:"required"`
}

func (p *CommentPayload) normalize() {
	p.User = strings.TrimSpace(p.User)
	p.Text = strings.TrimSpace(p.Text)
}

type ReactionPayload struct {
	Action string `json:"action"`
}

const (
	ActionLike    = "like"
	ActionDislike = "dislike"
)

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func trimTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	ret := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			ret = append(ret, tag)
		}
	}
	return ret
}
