package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/config"
	"github.com/tailorcv/tailorcv/pkg/llm"
	"github.com/tailorcv/tailorcv/pkg/renderer"
	"github.com/tailorcv/tailorcv/pkg/server"
	"github.com/tailorcv/tailorcv/pkg/tailor"
)

//nolint:gochecknoglobals // Cobra boilerplate
var servePort string

//nolint:gochecknoglobals // Cobra boilerplate
var serveData string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the CV tailoring web service",
	Long: `Run the web service: a tailoring page on / and a generation endpoint
on /generate.

Runs without an API key, in which case all content comes from the built-in
fallbacks instead of the Claude API.

Example:
  tailorcv serve
  tailorcv serve --port 8080 --data ./experience_data.json`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port (default from config or PORT)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Career data file (default from config)")
}

func runServe(_ *cobra.Command, _ []string) (err error) {
	// Load configuration
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	port := servePort
	if port == "" {
		port = cfg.Port
	}

	dataPath := serveData
	if dataPath == "" {
		dataPath = cfg.DataPath
	}

	// Assemble the pipeline
	data := career.LoadOrSample(dataPath)
	gateway := llm.NewGateway(cfg.AnthropicAPIKey, cfg.Model)
	engine := tailor.NewEngine(gateway, data, renderer.NewLaTeX())
	srv := server.New(engine)

	fmt.Printf("Starting tailorcv at http://localhost:%s\n", port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(port)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-errCh:
		if err != nil {
			err = errors.Wrap(err, "server error")
			return err
		}
	case <-sigCh:
		fmt.Println("\nShutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err = srv.Shutdown(ctx)
		if err != nil {
			err = errors.Wrap(err, "shutdown error")
			return err
		}
	}

	return err
}
