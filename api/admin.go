// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/api/utils"
	"github.com/heatchain/heat/co"
	"github.com/heatchain/heat/log"
	"github.com/heatchain/heat/metrics"
)

// NewAdmin returns the admin handler: metrics scraping, health probe
// and runtime log-level control. Served on its own listener, never on
// the public API address.
func NewAdmin(logLevel *slog.LevelVar) http.Handler {
	router := mux.NewRouter()
	router.Path("/metrics").Handler(metrics.HTTPHandler())
	router.Path("/health").Methods(http.MethodGet).HandlerFunc(
		utils.WrapHandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
			return utils.WriteJSON(w, &utils.M{"healthy": true})
		}))
	router.Path("/loglevel").Methods(http.MethodGet).HandlerFunc(
		utils.WrapHandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
			return utils.WriteJSON(w, &utils.M{"level": logLevel.Level().String()})
		}))
	router.Path("/loglevel").Methods(http.MethodPost).HandlerFunc(
		utils.WrapHandlerFunc(func(w http.ResponseWriter, req *http.Request) error {
			var body struct {
				Level string `json:"level"`
			}
			if err := utils.ParseJSON(req.Body, &body); err != nil {
				return utils.BadRequest(errors.WithMessage(err, "body"))
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(body.Level)); err != nil {
				return utils.BadRequest(errors.WithMessage(err, "level"))
			}
			logLevel.Set(level)
			return utils.WriteJSON(w, &utils.M{"level": logLevel.Level().String()})
		}))
	return router
}

// StartAdminServer serves the admin handler on addr. The returned
// closer shuts the listener down and waits for the serve goroutine.
func StartAdminServer(addr string, logLevel *slog.LevelVar) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen admin API addr [%v]", addr)
	}

	srv := &http.Server{
		Handler:           NewAdmin(logLevel),
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
	}
	logger := log.WithContext("pkg", "admin")
	var goes co.Goes
	goes.Go(func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			logger.Warn("admin server stopped", "err", err)
		}
	})
	return "http://" + listener.Addr().String(), func() {
		srv.Close()
		goes.Wait()
	}, nil
}
