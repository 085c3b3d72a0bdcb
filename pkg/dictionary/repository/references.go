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
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReferencesRepository struct {
	Collection *mongo.Collection
}

func NewReferencesRepository(db *mongo.Database) *ReferencesRepository {
	return &ReferencesRepository{Collection: db.Collection("references")}
}

func (r *ReferencesRepository) InitSchema(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "mainMeaning", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "subMeaning", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	return err
}

func (o ReferenceListOptions) condition() bson.M {
	cond := bson.M{}
	if o.MainMeaning != nil {
		cond["mainMeaning"] = *o.MainMeaning
	}
	if o.SubMeaning != nil {
		cond["subMeaning"] = *o.SubMeaning
	}
	if o.Type != "" {
		cond["type"] = o.Type
	}
	return cond
}

// List returns the matching references, newest first.
func (r *ReferencesRepository) List(ctx context.Context, opts ReferenceListOptions) ([]Reference, error) {
	return r.find(ctx, opts.condition())
}

// Search matches query as a literal, case insensitive substring of the
// content, meaning, context or any tag.
func (r *ReferencesRepository) Search(ctx context.Context, query string, typ ReferenceType) ([]Reference, error) {
	regex := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	cond := bson.M{
		"$or": bson.A{
			bson.M{"content": regex},
			bson.M{"meaning": regex},
			bson.M{"context": regex},
			bson.M{"tags": regex},
		},
	}
	if typ != "" {
		cond["type"] = typ
	}
	return r.find(ctx, cond)
}

// createdAt is stored with millisecond precision, _id breaks the ties.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func (r *ReferencesRepository) find(ctx context.Context, cond bson.M) ([]Reference, error) {
	cur, err := r.Collection.Find(ctx, cond, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, convertError(err)
	}
	defer cur.Close(ctx)

	list := []Reference{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, convertError(err)
	}
	return list, nil
}

func (r *ReferencesRepository) Get(ctx context.Context, id primitive.ObjectID) (Reference, error) {
	ret := Reference{}
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ret); err != nil {
		return Reference{}, convertError(err)
	}
	return ret, nil
}

// Create stores ref with fresh counters and no comments.
func (r *ReferencesRepository) Create(ctx context.Context, ref *Reference) error {
	ref.ID = primitive.NewObjectID()
	ref.Likes, ref.Dislikes = 0, 0
	ref.Comments = []Comment{}
	if ref.Tags == nil {
		ref.Tags = []string{}
	}
	ref.KeepLiveDetails()
	ref.CreatedAt = now()
	ref.UpdatedAt = ref.CreatedAt
	_, err := r.Collection.InsertOne(ctx, ref)
	return convertError(err)
}

func (r *ReferencesRepository) Update(ctx context.Context, id primitive.ObjectID, update ReferenceUpdate) (Reference, error) {
	update.UpdatedAt = now()
	ret := Reference{}
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ret)
	if err != nil {
		return Reference{}, convertError(err)
	}
	return ret, nil
}

// Delete removes the reference and returns it as it was.
func (r *ReferencesRepository) Delete(ctx context.Context, id primitive.ObjectID) (Reference, error) {
	ret := Reference{}
	if err := r.Collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&ret); err != nil {
		return Reference{}, convertError(err)
	}
	return ret, nil
}

// AddComment appends comment, filling its id and timestamp.
func (r *ReferencesRepository) AddComment(ctx context.Context, id primitive.ObjectID, comment *Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.Timestamp = now()
	comment.Likes = 0
	comment.Replies = []Reply{}
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updatedAt": comment.Timestamp},
		},
	)
	if err != nil {
		return convertError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddReply appends reply to the replies of one comment. It returns
// ErrNotFound for a missing reference and ErrCommentNotFound for a missing
// comment.
func (r *ReferencesRepository) AddReply(ctx context.Context, id, commentID primitive.ObjectID, reply *Reply) error {
	reply.ID = primitive.NewObjectID()
	reply.Timestamp = now()
	reply.Likes = 0
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id, "comments._id": commentID},
		bson.M{
			"$push": bson.M{"comments.$.replies": reply},
			"$set":  bson.M{"updatedAt": reply.Timestamp},
		},
	)
	if err != nil {
		return convertError(err)
	}
	if result.MatchedCount > 0 {
		return nil
	}
	count, err := r.Collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return convertError(err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrCommentNotFound
}

// React increments likes or dislikes and returns both counters.
func (r *ReferencesRepository) React(ctx context.Context, id primitive.ObjectID, dislike bool) (Reaction, error) {
	field := "likes"
	if dislike {
		field = "dislikes"
	}
	ret := Reaction{}
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{field: 1}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"likes": 1, "dislikes": 1}),
	).Decode(&ret)
	if err != nil {
		return Reaction{}, convertError(err)
	}
	return ret, nil
}
