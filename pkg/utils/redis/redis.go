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

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Options struct {
	Addr     string        `json:"addr,omitempty" description:"redis address, empty disables the cache"`
	Password string        `json:"password,omitempty" description:"redis password"`
	DB       int           `json:"db,omitempty" description:"redis database number"`
	TTL      time.Duration `json:"ttl,omitempty" description:"lifetime of cached entries"`
}

func (o *Options) Enabled() bool {
	return o != nil && o.Addr != ""
}

func (o *Options) ToDsn() string {
	if len(o.Password) == 0 {
		return fmt.Sprintf("redis://%s/%v", o.Addr, o.DB)
	}
	return fmt.Sprintf("redis://:%s@%s/%v", o.Password, o.Addr, o.DB)
}

func NewDefaultOptions() *Options {
	return &Options{
		Addr:     "", // keep empty to avoid using redis
		Password: "",
		TTL:      5 * time.Minute,
	}
}

type Client struct {
	*redis.Client
}

func NewClient(options *Options) (*Client, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})
	return &Client{Client: cli}, nil
}

// Ping fails when the server is unreachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
