package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr         string
		uploadDir    string
		maxUpload    int64
		allowedTypes []string
		pretty       bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload demo server",
		Long: `Start the demo server: a page with a file-upload control, the
upload endpoint behind it, a progress WebSocket, and Prometheus metrics
on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []server.Option{
				server.WithAddr(addr),
				server.WithUploadDir(uploadDir),
				server.WithMaxUploadSize(maxUpload),
				server.WithAllowedTypes(allowedTypes...),
			}
			if pretty {
				opts = append(opts, server.WithPretty())
			}

			srv, err := server.New(opts...)
			if err != nil {
				return err
			}

			// Shut down cleanly on SIGINT/SIGTERM.
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&uploadDir, "upload-dir", "uploads", "Directory for transient uploads")
	cmd.Flags().Int64Var(&maxUpload, "max-upload", 10<<20, "Maximum upload request size in bytes")
	cmd.Flags().StringSliceVar(&allowedTypes, "allow-type", nil, "Allowed MIME types (repeatable, supports image/*)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print rendered HTML")

	return cmd
}
