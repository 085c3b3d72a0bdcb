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
	"context"

	"github.com/iammonem/mojam/pkg/dictionary/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MainMeaningStore interface {
	List(ctx context.Context, letter string) ([]repository.MainMeaning, error)
	Get(ctx context.Context, id primitive.ObjectID) (repository.MainMeaning, error)
	Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]repository.MeaningSummary, error)
	Create(ctx context.Context, meaning *repository.MainMeaning) error
	Update(ctx context.Context, id primitive.ObjectID, update repository.MainMeaningUpdate) (repository.MainMeaning, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Increment(ctx context.Context, id primitive.ObjectID) error
	Decrement(ctx context.Context, id primitive.ObjectID) error
}

type SubMeaningStore interface {
	List(ctx context.Context, mainMeaning *primitive.ObjectID) ([]repository.SubMeaning, error)
	Get(ctx context.Context, id primitive.ObjectID) (repository.SubMeaning, error)
	Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]repository.MeaningSummary, error)
	Create(ctx context.Context, sub *repository.SubMeaning) error
	Update(ctx context.Context, id primitive.ObjectID, update repository.SubMeaningUpdate) (repository.SubMeaning, error)
	Delete(ctx context.Context, id primitive.ObjectID) (repository.SubMeaning, error)
	Increment(ctx context.Context, id primitive.ObjectID) error
	Decrement(ctx context.Context, id primitive.ObjectID) error
}

type ReferenceStore interface {
	List(ctx context.Context, opts repository.ReferenceListOptions) ([]repository.Reference, error)
	Search(ctx context.Context, query string, typ repository.ReferenceType) ([]repository.Reference, error)
	Get(ctx context.Context, id primitive.ObjectID) (repository.Reference, error)
	Create(ctx context.Context, ref *repository.Reference) error
	Update(ctx context.Context, id primitive.ObjectID, update repository.ReferenceUpdate) (repository.Reference, error)
	Delete(ctx context.Context, id primitive.ObjectID) (repository.Reference, error)
	AddComment(ctx context.Context, id primitive.ObjectID, comment *repository.Comment) error
	AddReply(ctx context.Context, id, commentID primitive.ObjectID, reply *repository.Reply) error
	React(ctx context.Context, id primitive.ObjectID, dislike bool) (repository.Reaction, error)
}

// Dictionary applies the business rules over the stores: payload
// validation, parent checks and the count cascade from children to their
// ancestors. Multi document writes are not transactional, a failure in the
// middle leaves the earlier writes in place.
type Dictionary struct {
	Meanings    MainMeaningStore
	SubMeanings SubMeaningStore
	References  ReferenceStore
	Cache       MeaningsCache
	Validator   *Validator
}

func NewDictionary(meanings MainMeaningStore, subs SubMeaningStore, refs ReferenceStore, cache MeaningsCache) *Dictionary {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Dictionary{
		Meanings:    meanings,
		SubMeanings: subs,
		References:  refs,
		Cache:       cache,
		Validator:   NewValidator(),
	}
}

// NewMongoDictionary wires the dictionary to the mongo repositories.
func NewMongoDictionary(db *mongo.Database, cache MeaningsCache) *Dictionary {
	return NewDictionary(
		repository.NewMainMeaningsRepository(db),
		repository.NewSubMeaningsRepository(db),
		repository.NewReferencesRepository(db),
		cache,
	)
}

type schemaInitializer interface {
	InitSchema(ctx context.Context) error
}

// InitSchemas creates the indexes of every store that has some.
func (d *Dictionary) InitSchemas(ctx context.Context) error {
	for _, store := range []interface{}{d.Meanings, d.SubMeanings, d.References} {
		if initializer, ok := store.(schemaInitializer); ok {
			if err := initializer.InitSchema(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
