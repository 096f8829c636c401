/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valpere/hireassist/internal/logger"
	"github.com/valpere/hireassist/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interview web form",
	Long: `Start the web UI with three pages: Home, Interview and About Us.

The Hugging Face token (HUGGINGFACE_TOKEN) must be set in the environment or
the .env file; without it the server does not start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logger.New(cfg.Logger, os.Stderr)
		ctx := context.Background()

		orch, closer, err := buildOrchestrator(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closer.Close()

		server, err := web.NewServer(orch, log.With().Str("component", "web").Logger())
		if err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			<-quit
			log.Info().Msg("shutting down server")
			if err := server.Shutdown(); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
			}
		}()

		return server.Listen(cfg.Server.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default :8501)")
	bindFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
