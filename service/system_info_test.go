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

package service

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystemInfo_Defaults(t *testing.T) {
	info, err := parseSystemInfo(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)
	s := systemInfoServiceImpl{info: info}

	assert.Equal(t, ":8080", s.GetListenAddress())
	assert.Equal(t, "info", s.GetLogLevel())
	assert.False(t, s.IsProductionMode())
	assert.Equal(t, 75, s.GetMinQualityScore())
	assert.Equal(t, time.Hour, s.GetAuditCacheTTL())
	assert.Equal(t, 5*time.Second, s.GetTaskPollInterval())
	assert.Equal(t, 5432, s.GetCredsFromEnv().Port)
	assert.NotEmpty(t, s.GetExecutorId())
	assert.Empty(t, s.GetApiKeys())
}

func TestParseSystemInfo_FromEnvironment(t *testing.T) {
	info, err := parseSystemInfo(env.Options{Environment: map[string]string{
		"LISTEN_ADDRESS":         ":9090",
		"PRODUCTION_MODE":        "true",
		"DB_HOST":                "db.local",
		"DB_PORT":                "6432",
		"OLRIC_PEERS":            "10.0.0.1:3322,10.0.0.2:3322",
		"API_KEYS":               "builder:k1,ci:k2",
		"MIN_QUALITY_SCORE":      "80",
		"AUDIT_CACHE_TTL_SEC":    "60",
		"TASK_POLL_INTERVAL_SEC": "0",
		"EXECUTOR_ID":            "node-1",
	}})
	require.NoError(t, err)
	s := systemInfoServiceImpl{info: info}

	assert.Equal(t, ":9090", s.GetListenAddress())
	assert.True(t, s.IsProductionMode())
	assert.Equal(t, "db.local", s.GetCredsFromEnv().Host)
	assert.Equal(t, 6432, s.GetCredsFromEnv().Port)
	assert.Equal(t, []string{"10.0.0.1:3322", "10.0.0.2:3322"}, s.GetOlricPeers())
	assert.Equal(t, map[string]string{"builder": "k1", "ci": "k2"}, s.GetApiKeys())
	assert.Equal(t, 80, s.GetMinQualityScore())
	assert.Equal(t, time.Minute, s.GetAuditCacheTTL())
	assert.Equal(t, 5*time.Second, s.GetTaskPollInterval())
	assert.Equal(t, "node-1", s.GetExecutorId())
}

func TestParseSystemInfo_Invalid(t *testing.T) {
	_, err := parseSystemInfo(env.Options{Environment: map[string]string{"MIN_QUALITY_SCORE": "120"}})
	assert.Error(t, err)

	_, err = parseSystemInfo(env.Options{Environment: map[string]string{"DB_PORT": "five"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
