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
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iammonem/mojam/pkg/dictionary/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memory stores behave like the mongo repositories, good enough to drive
// the business rules in tests.

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now.IsZero() {
		c.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	c.now = c.now.Add(time.Second)
	return c.now
}

type memoryMeanings struct {
	mu    sync.Mutex
	clock *clock
	items map[primitive.ObjectID]repository.MainMeaning
}

func newMemoryMeanings(c *clock) *memoryMeanings {
	return &memoryMeanings{clock: c, items: map[primitive.ObjectID]repository.MainMeaning{}}
}

func (m *memoryMeanings) List(_ context.Context, letter string) ([]repository.MainMeaning, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := []repository.MainMeaning{}
	for _, item := range m.items {
		if letter == "" || item.Letter == letter {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	return list, nil
}

func (m *memoryMeanings) Get(_ context.Context, id primitive.ObjectID) (repository.MainMeaning, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return repository.MainMeaning{}, repository.ErrNotFound
	}
	return item, nil
}

func (m *memoryMeanings) Summaries(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]repository.MeaningSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ret := map[primitive.ObjectID]repository.MeaningSummary{}
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			ret[id] = repository.MeaningSummary{ID: id, Title: item.Title}
		}
	}
	return ret, nil
}

func (m *memoryMeanings) titleTaken(title string, except primitive.ObjectID) bool {
	for id, item := range m.items {
		if id != except && item.Title == title {
			return true
		}
	}
	return false
}

func (m *memoryMeanings) Create(_ context.Context, meaning *repository.MainMeaning) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.titleTaken(meaning.Title, primitive.NilObjectID) {
		return repository.ErrDuplicate
	}
	meaning.ID = primitive.NewObjectID()
	meaning.Count = 0
	meaning.CreatedAt = m.clock.tick()
	meaning.UpdatedAt = meaning.CreatedAt
	m.items[meaning.ID] = *meaning
	return nil
}

func (m *memoryMeanings) Update(_ context.Context, id primitive.ObjectID, update repository.MainMeaningUpdate) (repository.MainMeaning, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return repository.MainMeaning{}, repository.ErrNotFound
	}
	if update.Title != nil {
		if m.titleTaken(*update.Title, id) {
			return repository.MainMeaning{}, repository.ErrDuplicate
		}
		item.Title = *update.Title
	}
	if update.Letter != nil {
		item.Letter = *update.Letter
	}
	if update.Count != nil {
		item.Count = *update.Count
	}
	item.UpdatedAt = m.clock.tick()
	m.items[id] = item
	return item, nil
}

func (m *memoryMeanings) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memoryMeanings) Increment(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[id]; ok {
		item.Count++
		m.items[id] = item
	}
	return nil
}

func (m *memoryMeanings) Decrement(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[id]; ok && item.Count > 0 {
		item.Count--
		m.items[id] = item
	}
	return nil
}

type memorySubMeanings struct {
	mu    sync.Mutex
	clock *clock
	items map[primitive.ObjectID]repository.SubMeaning
}

func newMemorySubMeanings(c *clock) *memorySubMeanings {
	return &memorySubMeanings{clock: c, items: map[primitive.ObjectID]repository.SubMeaning{}}
}

func (s *memorySubMeanings) List(_ context.Context, mainMeaning *primitive.ObjectID) ([]repository.SubMeaning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []repository.SubMeaning{}
	for _, item := range s.items {
		if mainMeaning == nil || item.MainMeaning == *mainMeaning {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	return list, nil
}

func (s *memorySubMeanings) Get(_ context.Context, id primitive.ObjectID) (repository.SubMeaning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return repository.SubMeaning{}, repository.ErrNotFound
	}
	return item, nil
}

func (s *memorySubMeanings) Summaries(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]repository.MeaningSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := map[primitive.ObjectID]repository.MeaningSummary{}
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			ret[id] = repository.MeaningSummary{ID: id, Title: item.Title}
		}
	}
	return ret, nil
}

func (s *memorySubMeanings) Create(_ context.Context, sub *repository.SubMeaning) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.ID = primitive.NewObjectID()
	sub.Count = 0
	sub.CreatedAt = s.clock.tick()
	sub.UpdatedAt = sub.CreatedAt
	s.items[sub.ID] = *sub
	return nil
}

func (s *memorySubMeanings) Update(_ context.Context, id primitive.ObjectID, update repository.SubMeaningUpdate) (repository.SubMeaning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return repository.SubMeaning{}, repository.ErrNotFound
	}
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Count != nil {
		item.Count = *update.Count
	}
	item.UpdatedAt = s.clock.tick()
	s.items[id] = item
	return item, nil
}

func (s *memorySubMeanings) Delete(_ context.Context, id primitive.ObjectID) (repository.SubMeaning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return repository.SubMeaning{}, repository.ErrNotFound
	}
	delete(s.items, id)
	return item, nil
}

func (s *memorySubMeanings) Increment(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		item.Count++
		s.items[id] = item
	}
	return nil
}

func (s *memorySubMeanings) Decrement(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok && item.Count > 0 {
		item.Count--
		s.items[id] = item
	}
	return nil
}

type memoryReferences struct {
	mu    sync.Mutex
	clock *clock
	items map[primitive.ObjectID]repository.Reference
}

func newMemoryReferences(c *clock) *memoryReferences {
	return &memoryReferences{clock: c, items: map[primitive.ObjectID]repository.Reference{}}
}

func (r *memoryReferences) sorted(match func(repository.Reference) bool) []repository.Reference {
	list := []repository.Reference{}
	for _, item := range r.items {
		if match(item) {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func (r *memoryReferences) List(_ context.Context, opts repository.ReferenceListOptions) ([]repository.Reference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(ref repository.Reference) bool {
		if opts.MainMeaning != nil && ref.MainMeaning != *opts.MainMeaning {
			return false
		}
		if opts.SubMeaning != nil && (ref.SubMeaning == nil || *ref.SubMeaning != *opts.SubMeaning) {
			return false
		}
		return opts.Type == "" || ref.Type == opts.Type
	}), nil
}

func (r *memoryReferences) Search(_ context.Context, query string, typ repository.ReferenceType) ([]repository.Reference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), strings.ToLower(query)) }
	return r.sorted(func(ref repository.Reference) bool {
		if typ != "" && ref.Type != typ {
			return false
		}
		if contains(ref.Content) || contains(ref.Meaning) || contains(ref.Context) {
			return true
		}
		for _, tag := range ref.Tags {
			if contains(tag) {
				return true
			}
		}
		return false
	}), nil
}

func (r *memoryReferences) Get(_ context.Context, id primitive.ObjectID) (repository.Reference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return repository.Reference{}, repository.ErrNotFound
	}
	return item, nil
}

func (r *memoryReferences) Create(_ context.Context, ref *repository.Reference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ref.ID = primitive.NewObjectID()
	ref.Likes, ref.Dislikes = 0, 0
	ref.Comments = []repository.Comment{}
	if ref.Tags == nil {
		ref.Tags = []string{}
	}
	ref.KeepLiveDetails()
	ref.CreatedAt = r.clock.tick()
	ref.UpdatedAt = ref.CreatedAt
	r.items[ref.ID] = *ref
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (r *memoryReferences) Update(_ context.Context, id primitive.ObjectID, u repository.ReferenceUpdate) (repository.Reference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return repository.Reference{}, repository.ErrNotFound
	}
	setIf(&item.Type, u.Type)
	setIf(&item.Content, u.Content)
	setIf(&item.Meaning, u.Meaning)
	setIf(&item.MainMeaning, u.MainMeaning)
	if u.SubMeaning != nil {
		sub := *u.SubMeaning
		item.SubMeaning = &sub
	}
	setIf(&item.Context, u.Context)
	setIf(&item.Tags, u.Tags)
	setIf(&item.Likes, u.Likes)
	setIf(&item.Dislikes, u.Dislikes)
	setIf(&item.Poet, u.Poet)
	setIf(&item.Era, u.Era)
	setIf(&item.Source, u.Source)
	setIf(&item.RevelationReason, u.RevelationReason)
	setIf(&item.Interpretation, u.Interpretation)
	setIf(&item.Narrator, u.Narrator)
	setIf(&item.HadithGrade, u.HadithGrade)
	setIf(&item.Explanation, u.Explanation)
	item.UpdatedAt = r.clock.tick()
	r.items[id] = item
	return item, nil
}

func (r *memoryReferences) Delete(_ context.Context, id primitive.ObjectID) (repository.Reference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return repository.Reference{}, repository.ErrNotFound
	}
	delete(r.items, id)
	return item, nil
}

func (r *memoryReferences) AddComment(_ context.Context, id primitive.ObjectID, comment *repository.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	comment.ID = primitive.NewObjectID()
	comment.Timestamp = r.clock.tick()
	comment.Likes = 0
	comment.Replies = []repository.Reply{}
	item.Comments = append(item.Comments, *comment)
	r.items[id] = item
	return nil
}

func (r *memoryReferences) AddReply(_ context.Context, id, commentID primitive.ObjectID, reply *repository.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	for i := range item.Comments {
		if item.Comments[i].ID != commentID {
			continue
		}
		reply.ID = primitive.NewObjectID()
		reply.Timestamp = r.clock.tick()
		reply.Likes = 0
		comments := append([]repository.Comment{}, item.Comments...)
		comments[i].Replies = append(append([]repository.Reply{}, comments[i].Replies...), *reply)
		item.Comments = comments
		r.items[id] = item
		return nil
	}
	return repository.ErrCommentNotFound
}

func (r *memoryReferences) React(_ context.Context, id primitive.ObjectID, dislike bool) (repository.Reaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return repository.Reaction{}, repository.ErrNotFound
	}
	if dislike {
		item.Dislikes++
	} else {
		item.Likes++
	}
	r.items[id] = item
	return repository.Reaction{Likes: item.Likes, Dislikes: item.Dislikes}, nil
}

type memoryDictionary struct {
	*Dictionary
	meanings    *memoryMeanings
	subMeanings *memorySubMeanings
	references  *memoryReferences
}

func newMemoryDictionary(cache MeaningsCache) memoryDictionary {
	c := &clock{}
	meanings, subs, refs := newMemoryMeanings(c), newMemorySubMeanings(c), newMemoryReferences(c)
	return memoryDictionary{
		Dictionary:  NewDictionary(meanings, subs, refs, cache),
		meanings:    meanings,
		subMeanings: subs,
		references:  refs,
	}
}
