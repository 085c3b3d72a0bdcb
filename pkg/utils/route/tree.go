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

package route

import (
	"net/http"
	"reflect"
	"strings"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

type Function = func(req *restful.Request, resp *restful.Response)

// Tree describes routes as nested groups, each group contributes a path
// prefix, common parameters and an openapi tag to the routes below it.
type Tree struct {
	Group           *Group
	RouteUpdateFunc func(r *Route) // can update route setting before build
}

func (t *Tree) AddToWebService(ws *restful.WebService) {
	t.addWebService(ws, "root", "", nil, t.Group)
}

func toRestfulParam(p Param) *restful.Parameter {
	if p.Type == "" && p.Example != nil {
		p.Type = reflect.TypeOf(p.Example).String()
	}
	if p.Type == "" {
		p.Type = "string"
	}

	var param *restful.Parameter
	switch p.Kind {
	case ParamKindBody:
		param = restful.BodyParameter(p.Name, p.Description)
	case ParamKindPath:
		param = restful.PathParameter(p.Name, p.Description)
	case ParamKindHeader:
		param = restful.HeaderParameter(p.Name, p.Description)
	case ParamKindQuery:
		param = restful.QueryParameter(p.Name, p.Description)
	default:
		return &restful.Parameter{}
	}
	return param.DataType(p.Type).Required(!p.IsOptional)
}

func (t *Tree) addWebService(ws *restful.WebService, tag string, basepath string, baseparams []Param, group *Group) {
	baseparams = append(baseparams, group.params...)
	basepath = strings.TrimRight(basepath, "/") + "/" + strings.TrimLeft(group.path, "/")
	if group.tag != "" {
		tag = group.tag
	}

	for _, route := range group.routes {
		if t.RouteUpdateFunc != nil {
			t.RouteUpdateFunc(route)
		}

		path := strings.TrimRight(basepath, "/") + route.Path
		if path == "" {
			path = "/"
		}
		rb := ws.
			Method(route.Method).
			Path(path).
			To(route.Func).
			Metadata(restfulspec.KeyOpenAPITags, []string{tag}).
			Doc(route.Summary)

		for _, param := range baseparams {
			rb.Param(toRestfulParam(param))
		}
		for _, param := range route.Params {
			if param.Kind == ParamKindBody {
				rb.Reads(param.Example, param.Description)
				continue
			}
			rb.Param(toRestfulParam(param))
		}
		for _, ret := range route.Responses {
			rb.Returns(ret.Code, ret.Description, ret.Body)
			if ret.Body != nil {
				rb.Writes(ret.Body)
			}
		}
		ws.Route(rb)
	}
	for _, sub := range group.subGroups {
		t.addWebService(ws, tag, basepath, baseparams, sub)
	}
}

type Group struct {
	tag       string
	path      string
	params    []Param // common params apply to all routes in the group
	routes    []*Route
	subGroups []*Group
}

func NewGroup(path string) *Group {
	return &Group{path: path}
}

func (g *Group) Tag(name string) *Group {
	g.tag = name
	return g
}

func (g *Group) AddRoutes(rs ...*Route) *Group {
	g.routes = append(g.routes, rs...)
	return g
}

func (g *Group) AddSubGroup(groups ...*Group) *Group {
	g.subGroups = append(g.subGroups, groups...)
	return g
}

func (g *Group) Parameters(params ...Param) *Group {
	g.params = append(g.params, params...)
	return g
}

type Route struct {
	Summary   string
	Path      string
	Method    string
	Func      Function
	Params    []Param
	Responses []ResponseMeta
}

type ResponseMeta struct {
	Code        int
	Body        interface{}
	Description string
}

func Do(method string, path string) *Route {
	return &Route{
		Method: method,
		Path:   path,
	}
}

func GET(path string) *Route {
	return Do(http.MethodGet, path)
}

func POST(path string) *Route {
	return Do(http.MethodPost, path)
}

func PUT(path string) *Route {
	return Do(http.MethodPut, path)
}

func DELETE(path string) *Route {
	return Do(http.MethodDelete, path)
}

func (n *Route) To(fun Function) *Route {
	n.Func = fun
	return n
}

func (n *Route) Doc(summary string) *Route {
	n.Summary = summary
	return n
}

func (n *Route) Parameters(params ...Param) *Route {
	n.Params = append(n.Params, params...)
	return n
}

// Response documents a 200 response.
func (n *Route) Response(body interface{}, descs ...string) *Route {
	return n.ResponseWithCode(http.StatusOK, body, descs...)
}

func (n *Route) ResponseWithCode(code int, body interface{}, descs ...string) *Route {
	n.Responses = append(n.Responses, ResponseMeta{Code: code, Body: body, Description: strings.Join(descs, "")})
	return n
}

type ParamKind string

const (
	ParamKindPath   ParamKind = "path"
	ParamKindQuery  ParamKind = "query"
	ParamKindHeader ParamKind = "header"
	ParamKindBody   ParamKind = "body"
)

type Param struct {
	Name        string
	Kind        ParamKind
	Type        string
	IsOptional  bool
	Description string
	Example     interface{}
}

func BodyParameter(name string, value interface{}) Param {
	return Param{Kind: ParamKindBody, Name: name, Example: value}
}

func PathParameter(name string, description string) Param {
	return Param{Kind: ParamKindPath, Name: name, Description: description}
}

func QueryParameter(name string, description string) Param {
	return Param{Kind: ParamKindQuery, Name: name, Description: description}
}

func HeaderParameter(name string, description string) Param {
	return Param{Kind: ParamKindHeader, Name: name, Description: description}
}

func (p Param) Optional() Param {
	p.IsOptional = true
	return p
}

func (p Param) DataType(t string) Param {
	p.Type = t
	return p
}
