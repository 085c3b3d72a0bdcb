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

	"github.com/go-logr/logr"
	"github.com/iammonem/mojam/pkg/dictionary/repository"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (d *Dictionary) ListSubMeanings(ctx context.Context, mainMeaning string) ([]repository.SubMeaningView, error) {
	parent, err := parseOptionalID(ctx, mainMeaning)
	if err != nil {
		return nil, err
	}
	list, err := d.SubMeanings.List(ctx, parent)
	if err != nil {
		return nil, storeError(ctx, err, "sub meaning not found")
	}
	return d.subMeaningViews(ctx, list)
}

func (d *Dictionary) GetSubMeaning(ctx context.Context, id string) (repository.SubMeaningView, error) {
	oid, err := parseID(ctx, id)
	if err != nil {
		return repository.SubMeaningView{}, err
	}
	sub, err := d.SubMeanings.Get(ctx, oid)
	if err != nil {
		return repository.SubMeaningView{}, storeError(ctx, err, "sub meaning not found")
	}
	views, err := d.subMeaningViews(ctx, []repository.SubMeaning{sub})
	if err != nil {
		return repository.SubMeaningView{}, err
	}
	return views[0], nil
}

func (d *Dictionary) subMeaningViews(ctx context.Context, list []repository.SubMeaning) ([]repository.SubMeaningView, error) {
	parents := make([]primitive.ObjectID, 0, len(list))
	for _, sub := range list {
		parents = append(parents, sub.MainMeaning)
	}
	mains, _, err := d.summaries(ctx, uniqueIDs(parents...), nil)
	if err != nil {
		return nil, err
	}
	views := make([]repository.SubMeaningView, 0, len(list))
	for _, sub := range list {
		views = append(views, repository.SubMeaningView{
			SubMeaning:  sub,
			MainMeaning: summaryOf(mains, sub.MainMeaning),
		})
	}
	return views, nil
}

// CreateSubMeaning requires an existing parent and then bumps its count.
func (d *Dictionary) CreateSubMeaning(ctx context.Context, payload SubMeaningPayload) (repository.SubMeaning, error) {
	payload.normalize()
	if err := d.Validator.Struct(ctx, payload); err != nil {
		return repository.SubMeaning{}, err
	}
	parent, err := parseID(ctx, payload.MainMeaning)
	if err != nil {
		return repository.SubMeaning{}, err
	}
	if _, err := d.Meanings.Get(ctx, parent); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.SubMeaning{}, validationError(ctx, "parent main meaning not found")
		}
		return repository.SubMeaning{}, storeError(ctx, err, "parent main meaning not found")
	}

	sub := repository.SubMeaning{
		Title:       payload.Title,
		MainMeaning: parent,
		Description: payload.Description,
	}
	if err := d.SubMeanings.Create(ctx, &sub); err != nil {
		return repository.SubMeaning{}, storeError(ctx, err, "sub meaning not found")
	}
	if err := d.Meanings.Increment(ctx, parent); err != nil {
		return repository.SubMeaning{}, storeError(ctx, err, "parent main meaning not found")
	}
	d.Cache.Purge(ctx)
	logr.FromContextOrDiscard(ctx).Info("sub meaning created", "id", sub.ID.Hex(), "mainMeaning", parent.Hex())
	return sub, nil
}

func (d *Dictionary) UpdateSubMeaning(ctx context.Context, id string, patch SubMeaningPatch) (repository.SubMeaning, error) {
	oid, err := parseID(ctx, id)
	if err != nil {
		return repository.SubMeaning{}, err
	}
	patch.normalize()
	if err := d.Validator.Struct(ctx, patch); err != nil {
		return repository.SubMeaning{}, err
	}
	sub, err := d.SubMeanings.Update(ctx, oid, patch.toUpdate())
	if err != nil {
		return repository.SubMeaning{}, storeError(ctx, err, "sub meaning not found")
	}
	return sub, nil
}

// DeleteSubMeaning removes the sub meaning and takes one off the parent
// count. A parent that is gone is skipped.
func (d *Dictionary) DeleteSubMeaning(ctx context.Context, id string) error {
	oid, err := parseID(ctx, id)
	if err != nil {
		return err
	}
	removed, err := d.SubMeanings.Delete(ctx, oid)
	if err != nil {
		return storeError(ctx, err, "sub meaning not found")
	}
	if err := d.Meanings.Decrement(ctx, removed.MainMeaning); err != nil {
		return storeError(ctx, err, "parent main meaning not found")
	}
	d.Cache.Purge(ctx)
	logr.FromContextOrDiscard(ctx).Info("sub meaning deleted", "id", id, "mainMeaning", removed.MainMeaning.Hex())
	return nil
}
