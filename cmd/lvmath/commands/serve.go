package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmath/internal/mcpserver"
	"github.com/katalvlaran/lvmath/internal/metrics"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routines as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := metrics.NewRegistry()
			srv := mcpserver.New(Version, mcpserver.Deps{
				Config: a.cfg,
				Log:    a.log,
				Solver: metrics.NewSolver(reg),
				Fits:   metrics.NewFits(reg),
			})

			if addr := a.cfg.Metrics.Addr; addr != "" {
				hs := &http.Server{
					Addr:              addr,
					Handler:           metricsMux(reg),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					a.log.Info("serving metrics", "addr", addr)
					if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						a.log.Error("metrics server", "err", err)
					}
				}()
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = hs.Shutdown(ctx)
				}()
			}

			return srv.ServeStdio()
		},
	}
	cmd.Flags().String("metrics-addr", "", "listen address for /metrics, empty to disable")

	return cmd
}

func metricsMux(g prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))

	return mux
}
