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
	"strings"

	"github.com/go-logr/logr"
	"github.com/iammonem/mojam/pkg/dictionary/repository"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReferenceFilter struct {
	MainMeaning string
	SubMeaning  string
	Type        string
}

func (d *Dictionary) parseType(ctx context.Context, typ string) (repository.ReferenceType, error) {
	if typ == "" {
		return "", nil
	}
	parsed, ok := repository.ParseReferenceType(typ)
	if !ok {
		return "", validationError(ctx, "invalid reference type %s", typ)
	}
	return parsed, nil
}

// ListReferences lists references newest first.
func (d *Dictionary) ListReferences(ctx context.Context, filter ReferenceFilter) ([]repository.ReferenceView, error) {
	opts := repository.ReferenceListOptions{}
	var err error
	if opts.MainMeaning, err = parseOptionalID(ctx, filter.MainMeaning); err != nil {
		return nil, err
	}
	if opts.SubMeaning, err = parseOptionalID(ctx, filter.SubMeaning); err != nil {
		return nil, err
	}
	if opts.Type, err = d.parseType(ctx, filter.Type); err != nil {
		return nil, err
	}
	list, err := d.References.List(ctx, opts)
	if err != nil {
		return nil, storeError(ctx, err, "reference not found")
	}
	return d.referenceViews(ctx, list)
}

// SearchReferences matches query as a case insensitive substring of the
// content, meaning, context or any tag of a reference.
func (d *Dictionary) SearchReferences(ctx context.Context, query, typ string) ([]repository.ReferenceView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationError(ctx, "search query required")
	}
	parsed, err := d.parseType(ctx, typ)
	if err != nil {
		return nil, err
	}
	list, err := d.References.Search(ctx, query, parsed)
	if err != nil {
		return nil, storeError(ctx, err, "reference not found")
	}
	return d.referenceViews(ctx, list)
}

func (d *Dictionary) GetReference(ctx context.Context, id string) (repository.ReferenceView, error) {
	oid, err := parseID(ctx, id)
	if err != nil {
		return repository.ReferenceView{}, err
	}
	ref, err := d.References.Get(ctx, oid)
	if err != nil {
		return repository.ReferenceView{}, storeError(ctx, err, "reference not found")
	}
	views, err := d.referenceViews(ctx, []repository.Reference{ref})
	if err != nil {
		return repository.ReferenceView{}, err
	}
	return views[0], nil
}

func (d *Dictionary) referenceViews(ctx context.Context, list []repository.Reference) ([]repository.ReferenceView, error) {
	mainIDs := make([]primitive.ObjectID, 0, len(list))
	subIDs := []primitive.ObjectID{}
	for _, ref := range list {
		mainIDs = append(mainIDs, ref.MainMeaning)
		if ref.SubMeaning != nil {
			subIDs = append(subIDs, *ref.SubMeaning)
		}
	}
	mains, subs, err := d.summaries(ctx, uniqueIDs(mainIDs...), uniqueIDs(subIDs...))
	if err != nil {
		return nil, err
	}
	views := make([]repository.ReferenceView, 0, len(list))
	for _, ref := range list {
		view := repository.ReferenceView{
			Reference:   ref,
			MainMeaning: summaryOf(mains, ref.MainMeaning),
		}
		if ref.SubMeaning != nil {
			view.SubMeaning = summaryOf(subs, *ref.SubMeaning)
		}
		views = append(views, view)
	}
	return views, nil
}

// CreateReference checks the parents, stores the reference and then bumps
// the main meaning count and the sub meaning count, one after the other.
func (d *Dictionary) CreateReference(ctx context.Context, payload ReferencePayload) (repository.Reference, error) {
	payload.normalize()
	if err := d.Validator.Struct(ctx, payload); err != nil {
		return repository.Reference{}, err
	}
	mainID, err := parseID(ctx, payload.MainMeaning)
	if err != nil {
		return repository.Reference{}, err
	}
	subID, err := parseOptionalID(ctx, payload.SubMeaning)
	if err != nil {
		return repository.Reference{}, err
	}
	if _, err := d.Meanings.Get(ctx, mainID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Reference{}, validationError(ctx, "parent main meaning not found")
		}
		return repository.Reference{}, storeError(ctx, err, "parent main meaning not found")
	}
	if subID != nil {
		if _, err := d.SubMeanings.Get(ctx, *subID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return repository.Reference{}, validationError(ctx, "sub meaning not found")
			}
			return repository.Reference{}, storeError(ctx, err, "sub meaning not found")
		}
	}

	ref := payload.toReference()
	ref.MainMeaning = mainID
	ref.SubMeaning = subID
	if err := d.References.Create(ctx, &ref); err != nil {
		return repository.Reference{}, storeError(ctx, err, "reference not found")
	}
	if err := d.Meanings.Increment(ctx, mainID); err != nil {
		return repository.Reference{}, storeError(ctx, err, "parent main meaning not found")
	}
	d.Cache.Purge(ctx)
	if subID != nil {
		if err := d.SubMeanings.Increment(ctx, *subID); err != nil {
			return repository.Reference{}, storeError(ctx, err, "sub meaning not found")
		}
	}
	logr.FromContextOrDiscard(ctx).Info("reference created", "id", ref.ID.Hex(), "type", ref.Type)
	return ref, nil
}

// UpdateReference overwrites the provided fields, parents are not checked
// again.
func (d *Dictionary) UpdateReference(ctx context.Context, id string, patch ReferencePatch) (repository.Reference, error) {
	oid, err := parseID(ctx, id)
	if err != nil {
		return repository.Reference{}, err
	}
	if err := d.Validator.Struct(ctx, patch); err != nil {
		return repository.Reference{}, err
	}
	update := repository.ReferenceUpdate{
		Content:          patch.Content,
		Meaning:          patch.Meaning,
		Context:          patch.Context,
		Tags:             patch.Tags,
		Likes:            patch.Likes,
		Dislikes:         patch.Dislikes,
		Poet:             patch.Poet,
		Era:              patch.Era,
		Source:           patch.Source,
		RevelationReason: patch.RevelationReason,
		Interpretation:   patch.Interpretation,
		Narrator:         patch.Narrator,
		HadithGrade:      patch.HadithGrade,
		Explanation:      patch.Explanation,
	}
	if patch.Type != nil {
		typ, err := d.parseType(ctx, *patch.Type)
		if err != nil {
			return repository.Reference{}, err
		}
		if typ != "" {
			update.Type = &typ
		}
	}
	if patch.MainMeaning != nil {
		if update.MainMeaning, err = parseOptionalID(ctx, *patch.MainMeaning); err != nil {
			return repository.Reference{}, err
		}
	}
	if patch.SubMeaning != nil {
		if update.SubMeaning, err = parseOptionalID(ctx, *patch.SubMeaning); err != nil {
			return repository.Reference{}, err
		}
	}
	ref, err := d.References.Update(ctx, oid, update)
	if err != nil {
		return repository.Reference{}, storeError(ctx, err, "reference not found")
	}
	return ref, nil
}

// DeleteReference removes the reference and takes one off the counts of
// both parents. Parents that are gone are skipped.
func (d *Dictionary) DeleteReference(ctx context.Context, id string) error {
	oid, err := parseID(ctx, id)
	if err != nil {
		return err
	}
	removed, err := d.References.Delete(ctx, oid)
	if err != nil {
		return storeError(ctx, err, "reference not found")
	}
	if err := d.Meanings.Decrement(ctx, removed.MainMeaning); err != nil {
		return storeError(ctx, err, "parent main meaning not found")
	}
	d.Cache.Purge(ctx)
	if removed.SubMeaning != nil {
		if err := d.SubMeanings.Decrement(ctx, *removed.SubMeaning); err != nil {
			return storeError(ctx, err, "sub meaning not found")
		}
	}
	logr.FromContextOrDiscard(ctx).Info("reference deleted", "id", id)
	return nil
}
