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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListMainMeanings lists main meanings by title, letter is optional.
func (d *Dictionary) ListMainMeanings(ctx context.Context, letter string) ([]repository.MainMeaning, error) {
	cacheable := letter == "" || repository.IsValidLetter(letter)
	if cacheable {
		if list, ok := d.Cache.Get(ctx, letter); ok {
			return list, nil
		}
	}
	list, err := d.Meanings.List(ctx, letter)
	if err != nil {
		return nil, storeError(ctx, err, "main meaning not found")
	}
	if cacheable {
		d.Cache.Set(ctx, letter, list)
	}
	return list, nil
}

func (d *Dictionary) GetMainMeaning(ctx context.Context, id string) (repository.MainMeaning, error) {
	oid, err := parseID(ctx, id)
	if err != nil {
		return repository.MainMeaning{}, err
	}
	meaning, err := d.Meanings.Get(ctx, oid)
	if err != nil {
		return repository.MainMeaning{}, storeError(ctx, err, "main meaning not found")
	}
	return meaning, nil
}

func (d *Dictionary) CreateMainMeaning(ctx context.Context, payload MainMeaningPayload) (repository.MainMeaning, error) {
	payload.normalize()
	if err := d.Validator.Struct(ctx, payload); err != nil {
		return repository.MainMeaning{}, err
	}
	meaning := repository.MainMeaning{Title: payload.Title, Letter: payload.Letter}
	if err := d.Meanings.Create(ctx, &meaning); err != nil {
		return repository.MainMeaning{}, storeError(ctx, err, "main meaning not found")
	}
	d.Cache.Purge(ctx)
	logr.FromContextOrDiscard(ctx).Info("main meaning created", "id", meaning.ID.Hex(), "letter", meaning.Letter)
	return meaning, nil
}

func (d *Dictionary) UpdateMainMeaning(ctx context.Context, id string, patch MainMeaningPatch) (repository.MainMeaning, error) {
	oid, err := parseID(ctx, id)
	if err != nil {
		return repository.MainMeaning{}, err
	}
	patch.normalize()
	if err := d.Validator.Struct(ctx, patch); err != nil {
		return repository.MainMeaning{}, err
	}
	meaning, err := d.Meanings.Update(ctx, oid, patch.toUpdate())
	if err != nil {
		return repository.MainMeaning{}, storeError(ctx, err, "main meaning not found")
	}
	d.Cache.Purge(ctx)
	return meaning, nil
}

// DeleteMainMeaning removes the main meaning only, its children are kept.
func (d *Dictionary) DeleteMainMeaning(ctx context.Context, id string) error {
	oid, err := parseID(ctx, id)
	if err != nil {
		return err
	}
	if err := d.Meanings.Delete(ctx, oid); err != nil {
		return storeError(ctx, err, "main meaning not found")
	}
	d.Cache.Purge(ctx)
	logr.FromContextOrDiscard(ctx).Info("main meaning deleted", "id", id)
	return nil
}

// summaries resolves the titles of the given main and sub meanings.
func (d *Dictionary) summaries(ctx context.Context, mainIDs, subIDs []primitive.ObjectID) (
	mains, subs map[primitive.ObjectID]repository.MeaningSummary, err error,
) {
	if len(mainIDs) > 0 {
		if mains, err = d.Meanings.Summaries(ctx, mainIDs); err != nil {
			return nil, nil, storeError(ctx, err, "main meaning not found")
		}
	}
	if len(subIDs) > 0 {
		if subs, err = d.SubMeanings.Summaries(ctx, subIDs); err != nil {
			return nil, nil, storeError(ctx, err, "sub meaning not found")
		}
	}
	return mains, subs, nil
}

func summaryOf(summaries map[primitive.ObjectID]repository.MeaningSummary, id primitive.ObjectID) *repository.MeaningSummary {
	if summary, ok := summaries[id]; ok {
		return &summary
	}
	return nil
}

// uniqueIDs keeps the first occurrence of every non zero id.
func uniqueIDs(ids ...primitive.ObjectID) []primitive.ObjectID {
	seen := map[primitive.ObjectID]struct{}{}
	ret := []primitive.ObjectID{}
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ret = append(ret, id)
	}
	return ret
}
