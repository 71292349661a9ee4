package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vialkit/vial"
	"github.com/vialkit/vial/internal/examples/gin/setup"
)

// Some of this code was taken from the GIN graceful shutdown example
// and adapted to resolve the server through the container
// https://github.com/gin-gonic/examples/blob/9fd0db1d6a7cdfd8dd1e0b163146674ea9d4ecfd/graceful-shutdown/graceful-shutdown/notify-with-context/server.go
func main() {
	// First create the container
	c := vial.New()

	// Then register all dependencies. You can do the registrations inline,
	// but it's usually better to separate that logic in a function, so you
	// can use it in your tests.
	setup.RegisterServices(c)
	setup.RegisterHTTPServer(c)

	logger := vial.MustResolve[*logrus.Logger](c)
	server := vial.MustResolve[*http.Server](c)

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Listen for the interrupt signal.
	<-ctx.Done()

	// Restore default behavior on the interrupt signal and notify user of shutdown.
	stop()
	logger.Info("shutting down gracefully, press Ctrl+C again to force")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Fatal("server forced to shutdown: ", err)
	}

	logger.Info("server exiting")
}
