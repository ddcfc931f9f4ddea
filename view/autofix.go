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

package view

type AutofixRequest struct {
	Url   string `json:"url,omitempty"`
	Html  string `json:"html"`
	Scope Scope  `json:"scope,omitempty"`
}

type AutofixResponse struct {
	FixedHtml      string       `json:"fixedHtml"`
	AttemptedFixes []string     `json:"attemptedFixes"`
	ResolvedFixes  []string     `json:"resolvedFixes"`
	Before         *AuditResult `json:"before"`
	After          *AuditResult `json:"after"`
}

// FixedPageOutput is the structured response expected from the language model.
type FixedPageOutput struct {
	Html    string   `json:"html" jsonschema:"description=Complete updated HTML document"`
	Changes []string `json:"changes" jsonschema:"description=Short description of every applied change"`
}

type UpdatePromptReq struct {
	Prompt string `json:"prompt"`
}

type UpdateModelReq struct {
	Model string `json:"model"`
}

type LLMSettings struct {
	Model string `json:"model"`
}
