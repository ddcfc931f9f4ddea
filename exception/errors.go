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

package exception

import (
	"fmt"
	"sort"
	"strings"
)

type CustomError struct {
	Status  int                    `json:"status"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Debug   string                 `json:"debug,omitempty"`
}

func (c CustomError) Error() string {
	msg := c.Message
	// longest names first so that $websiteId is not clobbered by $website
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, k := range keys {
		msg = strings.ReplaceAll(msg, "$"+k, fmt.Sprintf("%v", c.Params[k]))
	}
	return msg
}

// InvalidInputError is returned by the audit and quality engines when the
// input cannot be evaluated at all. Malformed markup is never an invalid input.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

const InvalidURLEscape = "6"
const InvalidURLEscapeMsg = "Failed to unescape parameter $param"

const InvalidParameterValue = "9"
const InvalidParameterValueMsg = "Value '$value' is not allowed for parameter $param"

const BadRequestBody = "10"
const BadRequestBodyMsg = "Failed to decode body"

const RequiredParamsMissing = "15"
const RequiredParamsMissingMsg = "Required parameters are missing: $params"

const EntityNotFound = "100"
const EntityNotFoundMsg = "$entity with id $id is not found"

const InsufficientPrivileges = "1900"
const InsufficientPrivilegesMsg = "You don't have enough privileges to perform this operation"

const InvalidHtmlInput = "3000"
const InvalidHtmlInputMsg = "Unable to evaluate html: $reason"

const InvalidAuditScope = "3001"
const InvalidAuditScopeMsg = "Audit scope '$scope' is not supported"

const PageFetchFailed = "3100"
const PageFetchFailedMsg = "Unable to fetch page $url: $reason"

const AutofixNotConfigured = "3200"
const AutofixNotConfiguredMsg = "Auto-fix is not available: LLM client is not configured"

const AutofixFailed = "3201"
const AutofixFailedMsg = "Auto-fix failed: $reason"

const OperationNotAllowed = "3300"
const OperationNotAllowedMsg = "Operation is not allowed in production mode"
