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

package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
)

// Query returns the first non-empty value among keys, converted to the
// type of defaultValue.
// nolint: forcetypeassert,gomnd
func Query[T any](r *http.Request, key string, defaultValue T, aliases ...string) T {
	values := r.URL.Query()
	val := values.Get(key)
	for _, alias := range aliases {
		if val != "" {
			break
		}
		val = values.Get(alias)
	}
	if val == "" {
		return defaultValue
	}
	switch any(defaultValue).(type) {
	case string:
		return any(val).(T)
	case int:
		intval, _ := strconv.Atoi(val)
		return any(intval).(T)
	case bool:
		b, _ := strconv.ParseBool(val)
		return any(b).(T)
	case int64:
		intval, _ := strconv.ParseInt(val, 10, 64)
		return any(intval).(T)
	default:
		return defaultValue
	}
}

var ErrUnsupportedContentType = errors.New("unsupported content type")

// Body decodes a json request body into "into". An empty body is not an
// error and leaves "into" untouched.
func Body(r *http.Request, into any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediatype, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return err
		}
		if mediatype != "application/json" {
			return fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediatype)
		}
	}
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(into); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
