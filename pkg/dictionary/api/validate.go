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
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iammonem/mojam/pkg/dictionary/repository"
)

type Validator struct {
	V *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "letter", func(fl validator.FieldLevel) bool {
		return repository.IsValidLetter(fl.Field().String())
	})
	mustRegister(v, "reftype", func(fl validator.FieldLevel) bool {
		_, ok := repository.ParseReferenceType(fl.Field().String())
		return ok
	})
	mustRegister(v, "objectid", func(fl validator.FieldLevel) bool {
		_, err := repository.ParseID(fl.Field().String())
		return err == nil
	})
	return &Validator{V: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// Struct validates value and reports the first failed field as a localized
// validation error.
func (v *Validator) Struct(ctx context.Context, value interface{}) error {
	err := v.V.Struct(value)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return validationError(ctx, "invalid data")
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return validationError(ctx, "field %s is required", fe.Field())
	case "letter":
		return validationError(ctx, "invalid letter %s", fe.Value())
	case "reftype":
		return validationError(ctx, "invalid reference type %s", fe.Value())
	case "objectid":
		return validationError(ctx, "invalid id %s", fe.Value())
	default:
		return validationError(ctx, "field %s is invalid", fe.Field())
	}
}
