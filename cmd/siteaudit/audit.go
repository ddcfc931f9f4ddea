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
	"github.com/spf13/cobra"
	"github.com/thundercloud/site-audit-service/audit"
	"github.com/thundercloud/site-audit-service/view"
)

var auditCmd = &cobra.Command{
	Use:   "audit [files...]",
	Short: "Run the SEO audit against HTML files",
	Long: `Scores every file against the audit rule catalog. Quick scope is scored out of 100,
comprehensive scope out of 135. Reads stdin when no file is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scopeFlag, _ := cmd.Flags().GetString("scope")
		url, _ := cmd.Flags().GetString("url")
		format, err := getFormat(cmd)
		if err != nil {
			return err
		}
		scope, err := audit.ParseScope(scopeFlag)
		if err != nil {
			return err
		}

		names := pageNames(args)
		results, err := evaluatePages(cmd.Context(), names, cmd.InOrStdin(), func(html string) (*view.AuditResult, error) {
			return audit.RunAudit(html, url, scope)
		})
		if err != nil {
			return err
		}

		reports := make([]auditReport, len(names))
		for i := range names {
			reports[i] = auditReport{File: names[i], Result: results[i]}
		}
		return writeAuditReports(cmd.OutOrStdout(), format, reports)
	},
}

func init() {
	auditCmd.Flags().String("scope", string(view.ScopeQuick), "Audit scope: quick or comprehensive")
	auditCmd.Flags().String("url", "", "Page URL, enables the HTTPS check")
	addFormatFlag(auditCmd)
	rootCmd.AddCommand(auditCmd)
}
