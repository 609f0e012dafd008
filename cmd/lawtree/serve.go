package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	lawhttp "github.com/fwojciec/lawtree/http"
)

// shutdownTimeout bounds how long in-flight requests may finish after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	opts := []lawhttp.Option{lawhttp.WithRecords(deps.Records)}
	if c.RateLimit > 0 {
		opts = append(opts, lawhttp.WithRateLimit(c.RateLimit, c.Burst))
	}

	srv := &http.Server{
		Handler:           lawhttp.NewServer(deps.Parser, deps.Logger, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", ln.Addr())

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
