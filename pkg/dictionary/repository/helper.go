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
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrDuplicate       = errors.New("document already exists")
	ErrInvalidID       = errors.New("invalid id")
)

// ParseID parses a hex ObjectID, surrounding spaces are ignored.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(ErrInvalidID, "%q", id)
	}
	return oid, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func convertError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.WithMessage(ErrDuplicate, err.Error())
	default:
		return errors.WithStack(err)
	}
}

// counter moves the denormalized count of a parent document. A missing
// parent is not an error, the move is skipped.
type counter struct {
	collection *mongo.Collection
}

func (c counter) Increment(ctx context.Context, id primitive.ObjectID) error {
	_, err := c.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"count": 1}, "$set": bson.M{"updatedAt": now()}},
	)
	return convertError(err)
}

// Decrement never takes the count below zero.
func (c counter) Decrement(ctx context.Context, id primitive.ObjectID) error {
	_, err := c.collection.UpdateOne(ctx,
		bson.M{"_id": id, "count": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"count": -1}, "$set": bson.M{"updatedAt": now()}},
	)
	return convertError(err)
}

func summaries(ctx context.Context, collection *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]MeaningSummary, error) {
	ret := map[primitive.ObjectID]MeaningSummary{}
	if len(ids) == 0 {
		return ret, nil
	}
	cur, err := collection.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1, "title": 1}),
	)
	if err != nil {
		return nil, convertError(err)
	}
	defer cur.Close(ctx)

	list := []MeaningSummary{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, convertError(err)
	}
	for _, item := range list {
		ret[item.ID] = item
	}
	return ret, nil
}
