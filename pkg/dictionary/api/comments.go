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
)

func (d *Dictionary) AddComment(ctx context.Context, referenceID string, payload CommentPayload) (repository.Comment, error) {
	oid, err := parseID(ctx, referenceID)
	if err != nil {
		return repository.Comment{}, err
	}
	payload.normalize()
	if err := d.Validator.Struct(ctx, payload); err != nil {
		return repository.Comment{}, err
	}
	comment := repository.Comment{User: payload.User, Text: payload.Text}
	if err := d.References.AddComment(ctx, oid, &comment); err != nil {
		return repository.Comment{}, storeError(ctx, err, "reference not found")
	}
	return comment, nil
}

// AddReply fails with distinct messages for a missing reference and a
// missing comment.
func (d *Dictionary) AddReply(ctx context.Context, referenceID, commentID string, payload CommentPayload) (repository.Reply, error) {
	oid, err := parseID(ctx, referenceID)
	if err != nil {
		return repository.Reply{}, err
	}
	cid, err := parseID(ctx, commentID)
	if err != nil {
		return repository.Reply{}, err
	}
	payload.normalize()
	if err := d.Validator.Struct(ctx, payload); err != nil {
		return repository.Reply{}, err
	}
	reply := repository.Reply{User: payload.User, Text: payload.Text}
	if err := d.References.AddReply(ctx, oid, cid, &reply); err != nil {
		return repository.Reply{}, storeError(ctx, err, "reference not found")
	}
	return reply, nil
}

// ToggleLike adds one like or one dislike, nothing else is accepted.
func (d *Dictionary) ToggleLike(ctx context.Context, referenceID string, action string) (repository.Reaction, error) {
	oid, err := parseID(ctx, referenceID)
	if err != nil {
		return repository.Reaction{}, err
	}
	switch action {
	case ActionLike, ActionDislike:
	default:
		// a missing reference wins over a bad action
		if _, err := d.References.Get(ctx, oid); err != nil {
			return repository.Reaction{}, storeError(ctx, err, "reference not found")
		}
		return repository.Reaction{}, validationError(ctx, "invalid action, must be \"like\" or \"dislike\"")
	}
	reaction, err := d.References.React(ctx, oid, action == ActionDislike)
	if err != nil {
		return repository.Reaction{}, storeError(ctx, err, "reference not found")
	}
	return reaction, nil
}
