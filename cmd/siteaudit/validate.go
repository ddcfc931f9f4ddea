// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thundercloud/site-audit-service/quality"
	"github.com/thundercloud/site-audit-service/view"
)

// errValidationFailed makes the command exit with status 1 without an error message.
var errValidationFailed = errors.New("quality validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check HTML files against the quality gate",
	Long: `Scores every file in five categories and compares the average with the minimum score.
Exits with status 1 when any file fails. Reads stdin when no file is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minScore, _ := cmd.Flags().GetInt("min-score")
		format, err := getFormat(cmd)
		if err != nil {
			return err
		}
		opts := quality.Options{MinScore: minScore}

		names := pageNames(args)
		results, err := evaluatePages(cmd.Context(), names, cmd.InOrStdin(), func(html string) (*view.ValidationResult, error) {
			return quality.Validate(html, opts)
		})
		if err != nil {
			return err
		}

		reports := make([]validationReport, len(names))
		passed := true
		for i := range names {
			reports[i] = validationReport{File: names[i], Result: results[i]}
			passed = passed && results[i].Passed
		}
		if err := writeValidationReports(cmd.OutOrStdout(), format, reports); err != nil {
			return err
		}
		if !passed {
			return errValidationFailed
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Int("min-score", quality.DefaultMinScore, "Minimum average score to pass (0-100)")
	addFormatFlag(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
