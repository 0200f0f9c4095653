package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/latextree/internal/metrics"
	httpAdapter "github.com/aretw0/latextree/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP rendering server",
	Long: `Starts an HTTP API that renders tree definitions and stores generated documents.

Endpoints:
  POST   /render             render one tree (?format=mermaid for a flowchart)
  PUT    /documents/{name}   render trees into a stored document
  GET    /documents/{name}   fetch a stored document
  DELETE /documents/{name}   delete a stored document
  GET    /documents          list stored documents
  GET    /metrics            Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		m := metrics.New()
		store, closeStore, err := openStore(cmd.Context(), cmd, m)
		if err != nil {
			return err
		}
		defer closeStore()

		handler := httpAdapter.NewHandler(store,
			httpAdapter.WithMetrics(m),
			httpAdapter.WithLogger(slog.Default()),
		)

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			slog.Info("Starting latextree server", "address", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			slog.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				slog.Error("Graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			slog.Info("Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	addStoreFlags(serveCmd)
}
