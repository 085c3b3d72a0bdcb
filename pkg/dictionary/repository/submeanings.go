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
)

type SubMeaningsRepository struct {
	Collection *mongo.Collection
	counter
}

func NewSubMeaningsRepository(db *mongo.Database) *SubMeaningsRepository {
	collection := db.Collection("submeanings")
	return &SubMeaningsRepository{Collection: collection, counter: counter{collection: collection}}
}

func (s *SubMeaningsRepository) InitSchema(ctx context.Context) error {
	_, err := s.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "mainMeaning", Value: 1}, {Key: "title", Value: 1}},
	})
	return err
}

// List returns sub meanings ordered by title, mainMeaning narrows to one parent.
func (s *SubMeaningsRepository) List(ctx context.Context, mainMeaning *primitive.ObjectID) ([]SubMeaning, error) {
	cond := bson.M{}
	if mainMeaning != nil {
		cond["mainMeaning"] = *mainMeaning
	}
	cur, err := s.Collection.Find(ctx, cond, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, convertError(err)
	}
	defer cur.Close(ctx)

	list := []SubMeaning{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, convertError(err)
	}
	return list, nil
}

func (s *SubMeaningsRepository) Get(ctx context.Context, id primitive.ObjectID) (SubMeaning, error) {
	ret := SubMeaning{}
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ret); err != nil {
		return SubMeaning{}, convertError(err)
	}
	return ret, nil
}

func (s *SubMeaningsRepository) Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]MeaningSummary, error) {
	return summaries(ctx, s.Collection, ids)
}

func (s *SubMeaningsRepository) Create(ctx context.Context, sub *SubMeaning) error {
	sub.ID = primitive.NewObjectID()
	sub.Count = 0
	sub.CreatedAt = now()
	sub.UpdatedAt = sub.CreatedAt
	_, err := s.Collection.InsertOne(ctx, sub)
	return convertError(err)
}

func (s *SubMeaningsRepository) Update(ctx context.Context, id primitive.ObjectID, update SubMeaningUpdate) (SubMeaning, error) {
	update.UpdatedAt = now()
	ret := SubMeaning{}
	err := s.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ret)
	if err != nil {
		return SubMeaning{}, convertError(err)
	}
	return ret, nil
}

// Delete removes the sub meaning and returns it as it was.
func (s *SubMeaningsRepository) Delete(ctx context.Context, id primitive.ObjectID) (SubMeaning, error) {
	ret := SubMeaning{}
	if err := s.Collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&ret); err != nil {
		return SubMeaning{}, convertError(err)
	}
	return ret, nil
}
