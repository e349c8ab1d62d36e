// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/gofem/mech/srv"
	"github.com/spf13/cobra"
)

func newServeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve stress evaluations and equilibrium solutions over HTTP",
		Example: `  mech serve --addr :8080`,
		Args:    cobra.NoArgs,
		RunE:    func(cmd *cobra.Command, args []string) error { return o.serve(cmd) },
	}
	cmd.Flags().String("addr", ":8080", "address to listen on")
	cmd.Flags().Duration("shutdown-timeout", 10*time.Second, "time allowed for pending requests on shutdown")
	return cmd
}

func (o *options) serve(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	hs := &http.Server{
		Addr:              o.v.GetString("addr"),
		Handler:           srv.New(o.logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		o.logger.Info("listening", "addr", hs.Addr, "version", Version)
		errc <- hs.ListenAndServe()
	}()
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	o.logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), o.v.GetDuration("shutdown-timeout"))
	defer cancel()
	if err := hs.Shutdown(sctx); err != nil {
		return chk.Err("shutdown failed: %v", err)
	}
	return nil
}
