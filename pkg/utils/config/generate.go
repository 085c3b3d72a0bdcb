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
	"fmt"
	"io"
	"reflect"
	"time"

	"gopkg.in/yaml.v3"
)

// GenerateConfig writes opt as a config.yaml skeleton, field descriptions
// become head comments.
func GenerateConfig(w io.Writer, opt interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(getYamlNode(reflect.ValueOf(opt))); err != nil {
		return err
	}
	return enc.Close()
}

func getYamlNode(vv reflect.Value) *yaml.Node {
	node := &yaml.Node{}
	switch vv.Kind() {
	case reflect.Ptr:
		if vv.IsNil() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		return getYamlNode(vv.Elem())
	case reflect.Slice, reflect.Array:
		node.Kind = yaml.SequenceNode
		node.Style = yaml.FlowStyle
		for idx := 0; idx < vv.Len(); idx++ {
			node.Content = append(node.Content, getYamlNode(vv.Index(idx)))
		}
	case reflect.Struct:
		node.Kind = yaml.MappingNode
		t := vv.Type()
		for idx := 0; idx < t.NumField(); idx++ {
			field := t.Field(idx)
			if !field.IsExported() {
				continue
			}
			name := fieldName(field)
			if name == "-" {
				continue
			}
			node.Content = append(node.Content,
				&yaml.Node{
					Kind:        yaml.ScalarNode,
					Value:       name,
					HeadComment: field.Tag.Get("description"),
				},
				getYamlNode(vv.Field(idx)),
			)
		}
	default:
		node.Kind = yaml.ScalarNode
		if d, ok := vv.Interface().(time.Duration); ok {
			node.Value = d.String()
		} else {
			node.Value = fmt.Sprintf("%v", vv.Interface())
		}
	}
	return node
}
