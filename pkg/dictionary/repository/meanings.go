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
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"k8s.io/utils/pointer"
)

type MainMeaningsRepository struct {
	Collection *mongo.Collection
	counter
}

func NewMainMeaningsRepository(db *mongo.Database) *MainMeaningsRepository {
	collection := db.Collection("mainmeanings")
	return &MainMeaningsRepository{Collection: collection, counter: counter{collection: collection}}
}

func (m *MainMeaningsRepository) InitSchema(ctx context.Context) error {
	_, err := m.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: &options.IndexOptions{Unique: pointer.Bool(true)},
		},
		// listing by letter
		{Keys: bson.D{{Key: "letter", Value: 1}, {Key: "title", Value: 1}}},
	})
	return err
}

// List returns main meanings ordered by title, letter is optional.
func (m *MainMeaningsRepository) List(ctx context.Context, letter string) ([]MainMeaning, error) {
	cond := bson.M{}
	if letter != "" {
		cond["letter"] = letter
	}
	cur, err := m.Collection.Find(ctx, cond, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, convertError(err)
	}
	defer cur.Close(ctx)

	list := []MainMeaning{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, convertError(err)
	}
	return list, nil
}

func (m *MainMeaningsRepository) Get(ctx context.Context, id primitive.ObjectID) (MainMeaning, error) {
	ret := MainMeaning{}
	if err := m.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ret); err != nil {
		return MainMeaning{}, convertError(err)
	}
	return ret, nil
}

func (m *MainMeaningsRepository) Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]MeaningSummary, error) {
	return summaries(ctx, m.Collection, ids)
}

// Create inserts meaning with a zero count, ErrDuplicate on a taken title.
func (m *MainMeaningsRepository) Create(ctx context.Context, meaning *MainMeaning) error {
	meaning.ID = primitive.NewObjectID()
	meaning.Count = 0
	meaning.CreatedAt = now()
	meaning.UpdatedAt = meaning.CreatedAt
	_, err := m.Collection.InsertOne(ctx, meaning)
	return convertError(err)
}

func (m *MainMeaningsRepository) Update(ctx context.Context, id primitive.ObjectID, update MainMeaningUpdate) (MainMeaning, error) {
	update.UpdatedAt = now()
	ret := MainMeaning{}
	err := m.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ret)
	if err != nil {
		return MainMeaning{}, convertError(err)
	}
	return ret, nil
}

func (m *MainMeaningsRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := m.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return convertError(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
