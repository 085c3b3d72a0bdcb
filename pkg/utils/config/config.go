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

package config

import (
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/iammonem/mojam/pkg/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Parse loads configuration into an already registered flag set.
/*
 * Sources by priority, highest first:
 1. command line flags
 2. environment variables
 3. config file (config.yaml in "." or "./config")
 4. defaults

The flag set is the schema: a flag "mongodb-addr" is read from the
environment variable "MONGODB_ADDR" and from the config file key
"mongodb.addr". Flags given on the command line are never overridden.
*/
func Parse(fs *pflag.FlagSet) error {
	LoadConfigFile(fs)
	LoadEnv(fs)
	Print(fs)
	return nil
}

func Print(fs *pflag.FlagSet) {
	fs.VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			log.Infof("config from flag: --%s=%s", flag.Name, flag.Value)
		}
	})
}

func LoadEnv(fs *pflag.FlagSet) {
	flagNameToEnvKey := func(fname string) string {
		return strings.ToUpper(strings.ReplaceAll(fname, "-", "_"))
	}
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		envname := flagNameToEnvKey(f.Name)
		if val, ok := os.LookupEnv(envname); ok {
			log.Infof("config from env: %s", envname)
			_ = f.Value.Set(val)
		}
	})
}

func LoadConfigFile(fs *pflag.FlagSet) {
	flagNameToConfigKey := func(fname string) string {
		return strings.ToLower(strings.ReplaceAll(fname, "-", "."))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	if err := v.ReadInConfig(); err != nil {
		log.Debugf("no config file loaded: %v", err)
		return
	}
	log.Infof("config file: %s", v.ConfigFileUsed())

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		filekeyname := flagNameToConfigKey(f.Name)
		if !v.IsSet(filekeyname) {
			return
		}
		if val := v.GetString(filekeyname); val != "" {
			_ = f.Value.Set(val)
		}
	})
}

// AutoRegisterFlags registers a flag for every leaf field of the struct
// pointed to by data. Flag names are built from json tags joined by "-",
// usage strings from the "description" tag.
func AutoRegisterFlags(fs *pflag.FlagSet, prefix string, data interface{}) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		panic("config: AutoRegisterFlags requires a pointer to struct")
	}
	registerStruct(fs, prefix, v.Elem())
}

func registerStruct(fs *pflag.FlagSet, prefix string, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "-" {
			continue
		}
		fieldv := v.Field(i)
		flagname := JoinFlagName(prefix, name)
		desc := field.Tag.Get("description")

		switch {
		case fieldv.Kind() == reflect.Ptr && fieldv.Type().Elem().Kind() == reflect.Struct:
			if fieldv.IsNil() {
				fieldv.Set(reflect.New(fieldv.Type().Elem()))
			}
			registerStruct(fs, flagname, fieldv.Elem())
			continue
		case fieldv.Kind() == reflect.Struct:
			registerStruct(fs, flagname, fieldv)
			continue
		}

		switch ptr := fieldv.Addr().Interface().(type) {
		case *string:
			fs.StringVar(ptr, flagname, *ptr, desc)
		case *bool:
			fs.BoolVar(ptr, flagname, *ptr, desc)
		case *int:
			fs.IntVar(ptr, flagname, *ptr, desc)
		case *time.Duration:
			fs.DurationVar(ptr, flagname, *ptr, desc)
		case *int64:
			fs.Int64Var(ptr, flagname, *ptr, desc)
		case *[]string:
			fs.StringSliceVar(ptr, flagname, *ptr, desc)
		default:
			log.Debugf("config: unsupported flag type %s for %s", fieldv.Type(), flagname)
		}
	}
}

func fieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		return field.Name
	}
	return name
}

func JoinFlagName(prefix, key string) string {
	if prefix == "" {
		return strings.ToLower(key)
	}
	return strings.ToLower(prefix + "-" + key)
}
