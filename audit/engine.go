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

package audit

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/document"
	"github.com/thundercloud/site-audit-service/view"
)

type Options struct {
	Scope    view.Scope
	URL      string
	Hreflang HreflangCondition
}

// RunAudit audits html in the given scope. url may be empty.
func RunAudit(html string, url string, scope view.Scope) (*view.AuditResult, error) {
	return Run(html, Options{Scope: scope, URL: url})
}

// Run parses html once and evaluates every rule of the requested scope
// against it. Malformed markup is reported as findings, never as an error.
func Run(html string, opts Options) (*view.AuditResult, error) {
	scope, err := ParseScope(string(opts.Scope))
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(html)
	if err != nil {
		return nil, err
	}

	in := &Input{Doc: doc, URL: opts.URL, Hreflang: opts.Hreflang}
	rules := rulesFor(scope)
	findings := []view.Finding{}
	for _, r := range rules {
		findings = append(findings, evaluate(r, in)...)
	}

	scores, total := Score(scope, findings)
	counts := countChecks(len(rules), findings)
	result := &view.AuditResult{
		Scope:           scope,
		TotalScore:      total,
		MaxScore:        MaxScore(scope),
		CategoryScores:  scores,
		CategoryBudgets: Budgets(scope),
		Findings:        findings,
		Recommendations: Recommendations(findings),
		ChecksPassed:    counts.passed,
		ChecksFailed:    counts.failed,
		ChecksWarned:    counts.warned,
	}
	if scope == view.ScopeComprehensive {
		result.Details = buildDetails(doc)
	}
	log.Debugf("Audit finished: scope=%s, rules=%d, findings=%d, score=%d/%d", scope, len(rules), len(findings), total, result.MaxScore)
	return result, nil
}

// evaluate isolates a single rule: a panic inside a check is turned into a
// zero-point informational finding and the remaining rules still run.
func evaluate(r rule, in *Input) (res []view.Finding) {
	defer func() {
		if cause := recover(); cause != nil {
			log.Errorf("Rule %s failed with panic: %v", r.name, cause)
			res = []view.Finding{failedFinding(r, cause)}
		}
	}()
	return r.check(in)
}

func fmtCause(name string, cause interface{}) string {
	return fmt.Sprintf("rule %s: %v", name, cause)
}
