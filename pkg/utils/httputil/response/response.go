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

package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrorBody is the envelope of every failed request.
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Message is the body of requests that only acknowledge an action.
type Message struct {
	Message string `json:"message"`
}

var withStack atomic.Bool

// SetDebug controls whether error responses carry the stack trace of the
// error. It must stay off in production.
func SetDebug(enabled bool) {
	withStack.Store(enabled)
}

func OK(w http.ResponseWriter, data interface{}) {
	DoRawResponse(w, http.StatusOK, data, nil)
}

func Created(w http.ResponseWriter, data interface{}) {
	DoRawResponse(w, http.StatusCreated, data, nil)
}

// ErrorResponse writes err with the status carried by a wrapped
// *StatusError, 500 otherwise.
func ErrorResponse(w http.ResponseWriter, err error) {
	body := ErrorBody{Message: err.Error()}
	if withStack.Load() {
		var st stackTracer
		if errors.As(err, &st) {
			body.Stack = fmt.Sprintf("%+v", st)
		}
	}
	DoRawResponse(w, StatusOf(err), body, nil)
}

type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

func DoRawResponse(w http.ResponseWriter, status int, data interface{}, headers map[string]string) {
	for k, v := range headers {
		w.Header().Set(k, v)
	}
	switch val := data.(type) {
	case io.Reader:
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(status)
		_, _ = io.Copy(w, val)
	case string:
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(val))
	case []byte:
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(status)
		_, _ = w.Write(val)
	case nil:
		w.WriteHeader(status)
	default:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(data)
	}
}

type Reason string

const (
	ReasonValidation Reason = "Validation"
	ReasonConflict   Reason = "Conflict"
	ReasonNotFound   Reason = "NotFound"
	ReasonUnknown    Reason = "Unknown"
)

type StatusError struct {
	Status  int    `json:"status"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message"`
}

func (e StatusError) Error() string {
	return e.Message
}

func NewReasonError(status int, reason Reason, message string) *StatusError {
	return &StatusError{
		Status:  status,
		Reason:  reason,
		Message: message,
	}
}

func StatusOf(err error) int {
	serr := &StatusError{}
	if errors.As(err, &serr) {
		return serr.Status
	}
	return http.StatusInternalServerError
}

func ReasonOf(err error) Reason {
	serr := &StatusError{}
	if errors.As(err, &serr) {
		return serr.Reason
	}
	return ReasonUnknown
}
