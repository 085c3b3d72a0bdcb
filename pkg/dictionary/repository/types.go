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
package repository

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Letters is the alphabet main meanings are organized by.
var Letters = []string{
	"ا", "ب", "ت", "ث", "ج", "ح", "خ", "د", "ذ", "ر", "ز", "س", "ش", "ص",
	"ض", "ط", "ظ", "ع", "غ", "ف", "ق", "ك", "ل", "م", "ن", "ه", "و", "ي",
}

func IsValidLetter(letter string) bool {
	for _, l := range Letters {
		if l == letter {
			return true
		}
	}
	return false
}

type ReferenceType string

const (
	ReferenceTypePoetry ReferenceType = "poetry"
	ReferenceTypeQuran  ReferenceType = "quran"
	ReferenceTypeHadith ReferenceType = "hadith"
)

var referenceTypeAliases = map[string]ReferenceType{
	"شعر":  ReferenceTypePoetry,
	"قرآن": ReferenceTypeQuran,
	"حديث": ReferenceTypeHadith,
}

// ParseReferenceType accepts both the english values and the arabic labels.
func ParseReferenceType(s string) (ReferenceType, bool) {
	s = strings.TrimSpace(s)
	switch t := ReferenceType(strings.ToLower(s)); t {
	case ReferenceTypePoetry, ReferenceTypeQuran, ReferenceTypeHadith:
		return t, true
	}
	t, ok := referenceTypeAliases[s]
	return t, ok
}

type MainMeaning struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Letter    string             `json:"letter" bson:"letter"`
	Count     int64              `json:"count" bson:"count"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MainMeaningUpdate holds the fields to set, nil fields are left untouched.
type MainMeaningUpdate struct {
	Title     *string   `bson:"title,omitempty"`
	Letter    *string   `bson:"letter,omitempty"`
	Count     *int64    `bson:"count,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MeaningSummary is the projection of a parent embedded into its children.
type MeaningSummary struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Title string             `json:"title" bson:"title"`
}

type SubMeaning struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	MainMeaning primitive.ObjectID `json:"mainMeaning" bson:"mainMeaning"`
	Description string             `json:"description" bson:"description"`
	Count       int64              `json:"count" bson:"count"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type SubMeaningUpdate struct {
	Title       *string   `bson:"title,omitempty"`
	Description *string   `bson:"description,omitempty"`
	Count       *int64    `bson:"count,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

// SubMeaningView shadows the parent id with its summary.
type SubMeaningView struct {
	SubMeaning
	MainMeaning *MeaningSummary `json:"mainMeaning"`
}

type PoetryDetails struct {
	Poet string `json:"poet,omitempty" bson:"poet,omitempty"`
	Era  string `json:"era,omitempty" bson:"era,omitempty"`
}

type QuranDetails struct {
	Source           string `json:"source,omitempty" bson:"source,omitempty"`
	RevelationReason string `json:"revelation_reason,omitempty" bson:"revelation_reason,omitempty"`
	Interpretation   string `json:"interpretation,omitempty" bson:"interpretation,omitempty"`
}

type HadithDetails struct {
	Narrator    string `json:"narrator,omitempty" bson:"narrator,omitempty"`
	HadithGrade string `json:"hadith_grade,omitempty" bson:"hadith_grade,omitempty"`
	Explanation string `json:"explanation,omitempty" bson:"explanation,omitempty"`
}

type Reply struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	User      string             `json:"user" bson:"user"`
	Text      string             `json:"text" bson:"text"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	Likes     int64              `json:"likes" bson:"likes"`
}

type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	User      string             `json:"user" bson:"user"`
	Text      string             `json:"text" bson:"text"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	Likes     int64              `json:"likes" bson:"likes"`
	Replies   []Reply            `json:"replies" bson:"replies"`
}

// Reference is a cited passage. Type tells which one of the embedded
// details is live, the wire shape keeps every detail at the top level.
type Reference struct {
	ID          primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Type        ReferenceType       `json:"type" bson:"type"`
	Content     string              `json:"content" bson:"content"`
	Meaning     string              `json:"meaning" bson:"meaning"`
	MainMeaning primitive.ObjectID  `json:"mainMeaning" bson:"mainMeaning"`
	SubMeaning  *primitive.ObjectID `json:"subMeaning,omitempty" bson:"subMeaning,omitempty"`
	Context     string              `json:"context" bson:"context"`
	Tags        []string            `json:"tags" bson:"tags"`
	Likes       int64               `json:"likes" bson:"likes"`
	Dislikes    int64               `json:"dislikes" bson:"dislikes"`
	Comments    []Comment           `json:"comments" bson:"comments"`

	PoetryDetails `bson:",inline"`
	QuranDetails  `bson:",inline"`
	HadithDetails `bson:",inline"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Details returns the variant selected by Type, nil for an unknown type.
func (r *Reference) Details() interface{} {
	switch r.Type {
	case ReferenceTypePoetry:
		return r.PoetryDetails
	case ReferenceTypeQuran:
		return r.QuranDetails
	case ReferenceTypeHadith:
		return r.HadithDetails
	default:
		return nil
	}
}

// KeepLiveDetails clears every variant but the one selected by Type.
func (r *Reference) KeepLiveDetails() {
	if r.Type != ReferenceTypePoetry {
		r.PoetryDetails = PoetryDetails{}
	}
	if r.Type != ReferenceTypeQuran {
		r.QuranDetails = QuranDetails{}
	}
	if r.Type != ReferenceTypeHadith {
		r.HadithDetails = HadithDetails{}
	}
}

// ReferenceUpdate sets every non nil field verbatim. There is no way to
// touch comments through it.
type ReferenceUpdate struct {
	Type             *ReferenceType      `bson:"type,omitempty"`
	Content          *string             `bson:"content,omitempty"`
	Meaning          *string             `bson:"meaning,omitempty"`
	MainMeaning      *primitive.ObjectID `bson:"mainMeaning,omitempty"`
	SubMeaning       *primitive.ObjectID `bson:"subMeaning,omitempty"`
	Context          *string             `bson:"context,omitempty"`
	Tags             *[]string           `bson:"tags,omitempty"`
	Likes            *int64              `bson:"likes,omitempty"`
	Dislikes         *int64              `bson:"dislikes,omitempty"`
	Poet             *string             `bson:"poet,omitempty"`
	Era              *string             `bson:"era,omitempty"`
	Source           *string             `bson:"source,omitempty"`
	RevelationReason *string             `bson:"revelation_reason,omitempty"`
	Interpretation   *string             `bson:"interpretation,omitempty"`
	Narrator         *string             `bson:"narrator,omitempty"`
	HadithGrade      *string             `bson:"hadith_grade,omitempty"`
	Explanation      *string             `bson:"explanation,omitempty"`
	UpdatedAt        time.Time           `bson:"updatedAt"`
}

// ReferenceView shadows the parent ids with their summaries.
type ReferenceView struct {
	Reference
	MainMeaning *MeaningSummary `json:"mainMeaning"`
	SubMeaning  *MeaningSummary `json:"subMeaning,omitempty"`
}

type Reaction struct {
	Likes    int64 `json:"likes" bson:"likes"`
	Dislikes int64 `json:"dislikes" bson:"dislikes"`
}

type ReferenceListOptions struct {
	MainMeaning *primitive.ObjectID
	SubMeaning  *primitive.ObjectID
	Type        ReferenceType
}
