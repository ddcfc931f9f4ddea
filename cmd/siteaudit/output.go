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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thundercloud/site-audit-service/audit"
	"github.com/thundercloud/site-audit-service/view"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJson = "json"
	formatYaml = "yaml"
)

type auditReport struct {
	File   string            `json:"file" yaml:"file"`
	Result *view.AuditResult `json:"result" yaml:"result"`
}

type validationReport struct {
	File   string                 `json:"file" yaml:"file"`
	Result *view.ValidationResult `json:"result" yaml:"result"`
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", formatText, "Output format: text, json or yaml")
}

func getFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatText, formatJson, formatYaml:
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

func writeStructured(w io.Writer, format string, v interface{}) error {
	if format == formatYaml {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeAuditReports(w io.Writer, format string, reports []auditReport) error {
	if format != formatText {
		return writeStructured(w, format, reports)
	}
	bold := color.New(color.Bold)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		res := r.Result
		bold.Fprintf(w, "== %s ==\n", r.File)
		fmt.Fprintf(w, "Score: %s (%s)\n", scoreColor(res.TotalScore, res.MaxScore).Sprintf("%d/%d", res.TotalScore, res.MaxScore), res.Scope)
		for _, c := range audit.Categories(res.Scope) {
			fmt.Fprintf(w, "  %-16s %3d/%d\n", c, res.CategoryScores[c], res.CategoryBudgets[c])
		}
		fmt.Fprintf(w, "Checks: %d passed, %d failed, %d warned\n", res.ChecksPassed, res.ChecksFailed, res.ChecksWarned)
		if len(res.Findings) > 0 {
			fmt.Fprintln(w, "Findings:")
			for _, f := range res.Findings {
				fmt.Fprintf(w, "  %s %-28s %3d  %s\n", severityLabel(f.Severity), f.Id, -f.Points, f.Message)
			}
		}
		writeList(w, "Recommendations:", res.Recommendations)
	}
	return nil
}

func writeValidationReports(w io.Writer, format string, reports []validationReport) error {
	if format != formatText {
		return writeStructured(w, format, reports)
	}
	bold := color.New(color.Bold)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		res := r.Result
		bold.Fprintf(w, "== %s ==\n", r.File)
		status := color.New(color.FgGreen, color.Bold).Sprint("PASS")
		if !res.Passed {
			status = color.New(color.FgRed, color.Bold).Sprint("FAIL")
		}
		fmt.Fprintf(w, "%s %d/100 (min %d)\n", status, res.Score, res.MinScore)
		for _, c := range view.QualityCategories {
			score := res.Checks.Get(c).Score
			fmt.Fprintf(w, "  %-14s %s\n", c, scoreColor(score, 100).Sprintf("%3d", score))
		}
		writeList(w, "Issues:", res.Issues)
		writeList(w, "Recommendations:", res.Recommendations)
	}
	return nil
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func scoreColor(score, max int) *color.Color {
	switch {
	case max <= 0:
		return color.New(color.Reset)
	case score*100 >= max*80:
		return color.New(color.FgGreen)
	case score*100 >= max*50:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgRed)
}

func severityLabel(s view.Severity) string {
	label := fmt.Sprintf("[%s]", strings.ToUpper(string(s)))
	switch s {
	case view.SeverityError:
		return color.RedString("%-9s", label)
	case view.SeverityWarning:
		return color.YellowString("%-9s", label)
	}
	return color.CyanString("%-9s", label)
}
