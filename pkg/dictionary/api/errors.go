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
	"net/http"

	"github.com/iammonem/mojam/pkg/dictionary/repository"
	"github.com/iammonem/mojam/pkg/i18n"
	"github.com/iammonem/mojam/pkg/utils/httputil/response"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validationError(ctx context.Context, format string, args ...interface{}) error {
	return errors.WithStack(response.NewReasonError(http.StatusBadRequest, response.ReasonValidation, i18n.Sprintf(ctx, format, args...)))
}

func conflictError(ctx context.Context, format string, args ...interface{}) error {
	return errors.WithStack(response.NewReasonError(http.StatusBadRequest, response.ReasonConflict, i18n.Sprintf(ctx, format, args...)))
}

func notFoundError(ctx context.Context, format string, args ...interface{}) error {
	return errors.WithStack(response.NewReasonError(http.StatusNotFound, response.ReasonNotFound, i18n.Sprintf(ctx, format, args...)))
}

// storeError maps repository errors to status errors, notfound is the
// message used for a missing document.
func storeError(ctx context.Context, err error, notfound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFoundError(ctx, notfound)
	case errors.Is(err, repository.ErrCommentNotFound):
		return notFoundError(ctx, "comment not found")
	case errors.Is(err, repository.ErrDuplicate):
		return conflictError(ctx, "main meaning already exists")
	case errors.Is(err, repository.ErrInvalidID):
		return validationError(ctx, "invalid data")
	default:
		return errors.WithStack(err)
	}
}

func parseID(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return oid, validationError(ctx, "invalid id %s", id)
	}
	return oid, nil
}

func parseOptionalID(ctx context.Context, id string) (*primitive.ObjectID, error) {
	if id == "" {
		return nil, nil
	}
	oid, err := parseID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}
