package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/bannersmith/internal/server"
)

var (
	// Serve command flags
	serveAddr       string
	serveBackground string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve banner composition over HTTP",
	Long: `Serve a JSON API backed by the same composition pipeline the create
command uses.

Endpoints:
  GET  /api/health   liveness check
  GET  /api/version  build information
  GET  /api/events   available event schemes
  POST /api/banner   compose a banner, returns image/webp

Examples:
  # Serve on the default port with a fixed background
  bannersmith serve --background background.png

  # Serve on a specific address
  bannersmith serve --addr :9090 --background background.png --image-dir ./tifs`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveBackground, "background", "", "default background image for requests that omit one")
	addPipelineFlags(serveCmd.Flags())
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	composer, _, err := buildComposer(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	srv := &server.Server{
		Composer:          composer,
		DefaultBackground: serveBackground,
		Logger:            logger,
	}

	logger.Info("serving banner API", "addr", serveAddr)
	if err := srv.Run(serveAddr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
