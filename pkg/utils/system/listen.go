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
package system

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const shutdownTimeout = 10 * time.Second

// ListenAndServeContext serves handler on listen until ctx is done, then
// drains in-flight requests before returning.
func ListenAndServeContext(ctx context.Context, listen string, tls *tls.Config, handler http.Handler) error {
	log := logr.FromContextOrDiscard(ctx)

	s := http.Server{Handler: handler, Addr: listen, TLSConfig: tls}
	go func() {
		<-ctx.Done()
		log.Info("shutting down server", "addr", listen)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Error(err, "graceful shutdown", "addr", listen)
			_ = s.Close()
		}
	}()

	var err error
	if s.TLSConfig != nil {
		// http2 support with tls enabled
		_ = http2.ConfigureServer(&s, &http2.Server{})
		log.Info("starting https server", "addr", listen)
		err = s.ListenAndServeTLS("", "")
	} else {
		// http2 support without https
		s.Handler = h2c.NewHandler(s.Handler, &http2.Server{})
		log.Info("starting http server", "addr", listen)
		err = s.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
