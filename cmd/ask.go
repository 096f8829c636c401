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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/hireassist/internal"
	"github.com/valpere/hireassist/internal/logger"
	"github.com/valpere/hireassist/internal/orchestrator"
	"github.com/valpere/hireassist/internal/translator"
)

var (
	askTechStack string
	askLanguage  string
	askYears     int
	askPosition  string
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Generate interview questions once and print them",
	Long: `Run a single submission from the terminal: generate questions for the given
tech stack, translate them and print the sentiment label.

Example:
  hireassist ask --tech-stack python,react,sql --language French`,
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

		sub := orch.Run(ctx, internal.CandidateProfile{
			YearsExperience: askYears,
			DesiredPosition: askPosition,
			TechStack:       internal.ParseTechStack(askTechStack),
			Language:        askLanguage,
		})

		if sub.State == orchestrator.StateError {
			return fmt.Errorf("%s", sub.DisplayText())
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "📌 Interview Questions:")
		fmt.Fprintln(out, sub.DisplayText())
		fmt.Fprintf(out, "\nSentiment Analysis: %s\n", sub.Sentiment.Display())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVarP(&askTechStack, "tech-stack", "s", "", "Comma-separated tech stack (required)")
	askCmd.Flags().StringVarP(&askLanguage, "language", "l", translator.DefaultLanguage, "Preferred language: English, Spanish, French, German or Chinese")
	askCmd.Flags().IntVar(&askYears, "years", 0, "Years of experience")
	askCmd.Flags().StringVar(&askPosition, "position", "", "Desired position")

	askCmd.MarkFlagRequired("tech-stack")
}
