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

package dictionary

import (
	"context"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/go-logr/logr"
	"github.com/go-openapi/spec"
	"github.com/google/uuid"
	"github.com/iammonem/mojam/pkg/dictionary/api"
	"github.com/iammonem/mojam/pkg/i18n"
	"github.com/iammonem/mojam/pkg/log"
	"github.com/iammonem/mojam/pkg/utils/exporter"
	"github.com/iammonem/mojam/pkg/utils/httputil/response"
	"github.com/iammonem/mojam/pkg/utils/mongo"
	"github.com/iammonem/mojam/pkg/utils/redis"
	"github.com/iammonem/mojam/pkg/utils/route"
	"github.com/iammonem/mojam/pkg/utils/system"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	LogLevel string            `json:"loglevel,omitempty" description:"log level: debug, info, warn or error"`
	System   *system.Options   `json:"system,omitempty"`
	MongoDB  *mongo.Options    `json:"mongodb,omitempty"`
	Redis    *redis.Options    `json:"redis,omitempty"`
	Metrics  *exporter.Options `json:"metrics,omitempty"`
}

func DefaultOptions() *Options {
	return &Options{
		System:  system.NewDefaultOptions(),
		MongoDB: mongo.DefaultOptions(),
		Redis:   redis.NewDefaultOptions(),
		Metrics: exporter.DefaultOptions(),
	}
}

func Run(ctx context.Context, options *Options) error {
	if options.LogLevel != "" {
		log.SetLevel(options.LogLevel)
	}
	ctx = log.NewContext(ctx, log.LogrLogger.WithName("dictionary"))
	server := Server{Options: options}
	return server.Run(ctx)
}

type Server struct {
	Options *Options
}

func (s *Server) Run(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)

	mongocli, db, err := mongo.NewMongoDB(ctx, s.Options.MongoDB)
	if err != nil {
		return errors.Wrap(err, "setup mongo")
	}
	defer func() { _ = mongocli.Disconnect(context.Background()) }()

	cache, err := s.setupCache(ctx)
	if err != nil {
		return errors.Wrap(err, "setup redis")
	}

	dictionary := api.NewMongoDictionary(db, cache)
	if err := dictionary.InitSchemas(ctx); err != nil {
		return errors.Wrap(err, "init schemas")
	}

	metrics := exporter.NewRequestMetrics("mojam")
	handler := s.setupAPI(ctx, dictionary, metrics)

	eg, ctx := errgroup.WithContext(ctx)
	if listen := s.Options.Metrics.Listen; listen != "" {
		eg.Go(func() error {
			mux := http.NewServeMux()
			mux.Handle(exporter.MetricPath, metrics.Handler())
			log.Info("start metrics server", "listen", listen)
			return system.ListenAndServeContext(ctx, listen, nil, mux)
		})
	}
	eg.Go(func() error {
		log.Info("start web service", "listen", s.Options.System.Listen, "mode", s.Options.System.Mode)
		return system.ListenAndServeContext(ctx, s.Options.System.Listen, nil, handler)
	})
	return eg.Wait()
}

func (s *Server) setupCache(ctx context.Context) (api.MeaningsCache, error) {
	if !s.Options.Redis.Enabled() {
		logr.FromContextOrDiscard(ctx).Info("redis disabled, meanings listings are not cached")
		return api.NoopCache{}, nil
	}
	cli, err := redis.NewClient(s.Options.Redis)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx); err != nil {
		return nil, err
	}
	return api.NewRedisCache(cli.Client, s.Options.Redis.TTL), nil
}

func (s *Server) setupAPI(ctx context.Context, dictionary *api.Dictionary, metrics *exporter.RequestMetrics) http.Handler {
	response.SetDebug(!s.Options.System.IsProduction())

	rg := route.NewGroup("")
	api.NewDictionaryAPI(dictionary).AddToWebService(rg)

	ws := &restful.WebService{}
	ws.Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	(&route.Tree{Group: rg}).AddToWebService(ws)
	ws.Filter(restful.CrossOriginResourceSharing{AllowedHeaders: []string{"*"}, AllowedMethods: []string{"*"}}.Filter)

	c := restful.NewContainer()
	c.Add(ws)
	c.Add(route.BuildOpenAPIWebService(c.RegisteredWebServices(), "/docs.json", completeInfo))
	c.Filter(NewLogFilter(logr.FromContextOrDiscard(ctx)))
	// Add container filter to respond to OPTIONS
	c.Filter(restful.OPTIONSFilter())
	c.Filter(i18n.SetLang)
	c.Filter(metrics.Filter)

	if s.Options.Metrics.Listen == "" {
		c.Handle(exporter.MetricPath, metrics.Handler())
	}
	return c
}

func completeInfo(s *spec.Swagger) {
	s.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Mojam",
			Description: "encyclopedic dictionary of meanings api",
			Version:     "1.0.0",
		},
	}
	s.Schemes = []string{"http", "https"}
	s.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "meanings", Description: "main meanings by letter"}},
		{TagProps: spec.TagProps{Name: "submeanings", Description: "sub meanings of a main meaning"}},
		{TagProps: spec.TagProps{Name: "references", Description: "poetry, quran and hadith references"}},
	}
}

const HeaderRequestID = "X-Request-Id"

// NewLogFilter stamps a request id and puts a logger carrying it into the
// request context.
func NewLogFilter(logger logr.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()
		id := req.HeaderParameter(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		resp.AddHeader(HeaderRequestID, id)

		reqlog := logger.WithValues("id", id)
		req.Request = req.Request.WithContext(logr.NewContext(req.Request.Context(), reqlog))
		chain.ProcessFilter(req, resp)

		reqlog.Info(req.Request.URL.String(),
			"method", req.Request.Method,
			"code", resp.StatusCode(),
			"duration", time.Since(start).String(),
		)
	}
}
