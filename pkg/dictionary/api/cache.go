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
	"encoding/json"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-redis/redis/v8"
	"github.com/iammonem/mojam/pkg/dictionary/repository"
)

// MeaningsCache holds main meaning listings keyed by letter, the empty
// letter is the unfiltered listing. Failures are never reported to callers.
type MeaningsCache interface {
	Get(ctx context.Context, letter string) ([]repository.MainMeaning, bool)
	Set(ctx context.Context, letter string, list []repository.MainMeaning)
	Purge(ctx context.Context)
}

type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]repository.MainMeaning, bool) { return nil, false }
func (NoopCache) Set(context.Context, string, []repository.MainMeaning)        {}
func (NoopCache) Purge(context.Context)                                        {}

const cacheKeyPrefix = "mojam:meanings:"

type RedisCache struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

func NewRedisCache(cli redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: cli, TTL: ttl}
}

func cacheKey(letter string) string {
	if letter == "" {
		return cacheKeyPrefix + "all"
	}
	return cacheKeyPrefix + letter
}

func (c *RedisCache) Get(ctx context.Context, letter string) ([]repository.MainMeaning, bool) {
	data, err := c.Client.Get(ctx, cacheKey(letter)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logr.FromContextOrDiscard(ctx).Error(err, "read meanings cache", "letter", letter)
		}
		return nil, false
	}
	list := []repository.MainMeaning{}
	if err := json.Unmarshal(data, &list); err != nil {
		logr.FromContextOrDiscard(ctx).Error(err, "decode meanings cache", "letter", letter)
		return nil, false
	}
	return list, true
}

func (c *RedisCache) Set(ctx context.Context, letter string, list []repository.MainMeaning) {
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, cacheKey(letter), data, c.TTL).Err(); err != nil {
		logr.FromContextOrDiscard(ctx).Error(err, "write meanings cache", "letter", letter)
	}
}

// Purge drops every listing, the letters are a closed set.
func (c *RedisCache) Purge(ctx context.Context) {
	keys := make([]string, 0, len(repository.Letters)+1)
	keys = append(keys, cacheKey(""))
	for _, letter := range repository.Letters {
		keys = append(keys, cacheKey(letter))
	}
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		logr.FromContextOrDiscard(ctx).Error(err, "purge meanings cache")
	}
}
