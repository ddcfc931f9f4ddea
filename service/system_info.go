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
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/view"
)

type SystemInfoService interface {
	GetListenAddress() string
	GetOriginAllowed() string
	GetLogLevel() string
	IsProductionMode() bool
	GetCredsFromEnv() *view.DbCredentials
	GetOlricDiscoveryMode() string
	GetOlricReplicaCount() int
	GetOlricPeers() []string
	GetNamespace() string
	GetOpenAIApiKey() string
	GetOpenAIModel() string
	GetOpenAIProxy() string
	GetApiKeys() map[string]string
	GetJwtSecret() string
	GetMinQualityScore() int
	GetAuditCacheTTL() time.Duration
	GetTaskPollInterval() time.Duration
	GetExecutorId() string
}

type systemInfo struct {
	ListenAddress      string            `env:"LISTEN_ADDRESS" envDefault:":8080"`
	OriginAllowed      string            `env:"ORIGIN_ALLOWED"`
	LogLevel           string            `env:"LOG_LEVEL" envDefault:"info"`
	ProductionMode     bool              `env:"PRODUCTION_MODE" envDefault:"false"`
	DbHost             string            `env:"DB_HOST" envDefault:"localhost"`
	DbPort             int               `env:"DB_PORT" envDefault:"5432"`
	DbName             string            `env:"DB_NAME" envDefault:"site_audit"`
	DbUser             string            `env:"DB_USER" envDefault:"site_audit"`
	DbPassword         string            `env:"DB_PASSWORD"`
	OlricDiscoveryMode string            `env:"OLRIC_DISCOVERY_MODE" envDefault:"local"`
	OlricReplicaCount  int               `env:"OLRIC_REPLICA_COUNT" envDefault:"1"`
	OlricPeers         []string          `env:"OLRIC_PEERS" envSeparator:","`
	Namespace          string            `env:"NAMESPACE" envDefault:"default"`
	OpenAIApiKey       string            `env:"OPENAI_API_KEY"`
	OpenAIModel        string            `env:"OPENAI_MODEL"`
	OpenAIProxy        string            `env:"OPENAI_PROXY"`
	ApiKeys            map[string]string `env:"API_KEYS" envSeparator:"," envKeyValSeparator:":"`
	JwtSecret          string            `env:"JWT_SECRET"`
	MinQualityScore    int               `env:"MIN_QUALITY_SCORE" envDefault:"75"`
	AuditCacheTTLSec   int               `env:"AUDIT_CACHE_TTL_SEC" envDefault:"3600"`
	TaskPollInterval   int               `env:"TASK_POLL_INTERVAL_SEC" envDefault:"5"`
	ExecutorId         string            `env:"EXECUTOR_ID"`
}

func NewSystemInfoService() (SystemInfoService, error) {
	info, err := parseSystemInfo(env.Options{})
	if err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return &systemInfoServiceImpl{info: info}, nil
}

func parseSystemInfo(opts env.Options) (*systemInfo, error) {
	var info systemInfo
	if err := env.ParseWithOptions(&info, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if info.MinQualityScore < 0 || info.MinQualityScore > 100 {
		return nil, fmt.Errorf("MIN_QUALITY_SCORE must be within [0, 100], got %d", info.MinQualityScore)
	}
	if info.TaskPollInterval <= 0 {
		info.TaskPollInterval = 5
	}
	if info.ExecutorId == "" {
		info.ExecutorId = uuid.New().String()
	}
	return &info, nil
}

type systemInfoServiceImpl struct {
	info *systemInfo
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.info.ListenAddress
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.info.OriginAllowed
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.info.LogLevel
}

func (g systemInfoServiceImpl) IsProductionMode() bool {
	return g.info.ProductionMode
}

func (g systemInfoServiceImpl) GetCredsFromEnv() *view.DbCredentials {
	return &view.DbCredentials{
		Host:     g.info.DbHost,
		Port:     g.info.DbPort,
		Database: g.info.DbName,
		Username: g.info.DbUser,
		Password: g.info.DbPassword,
	}
}

func (g systemInfoServiceImpl) GetOlricDiscoveryMode() string {
	return g.info.OlricDiscoveryMode
}

func (g systemInfoServiceImpl) GetOlricReplicaCount() int {
	return g.info.OlricReplicaCount
}

func (g systemInfoServiceImpl) GetOlricPeers() []string {
	return g.info.OlricPeers
}

func (g systemInfoServiceImpl) GetNamespace() string {
	return g.info.Namespace
}

func (g systemInfoServiceImpl) GetOpenAIApiKey() string {
	return g.info.OpenAIApiKey
}

func (g systemInfoServiceImpl) GetOpenAIModel() string {
	return g.info.OpenAIModel
}

func (g systemInfoServiceImpl) GetOpenAIProxy() string {
	return g.info.OpenAIProxy
}

func (g systemInfoServiceImpl) GetApiKeys() map[string]string {
	return g.info.ApiKeys
}

func (g systemInfoServiceImpl) GetJwtSecret() string {
	return g.info.JwtSecret
}

func (g systemInfoServiceImpl) GetMinQualityScore() int {
	return g.info.MinQualityScore
}

func (g systemInfoServiceImpl) GetAuditCacheTTL() time.Duration {
	return time.Duration(g.info.AuditCacheTTLSec) * time.Second
}

func (g systemInfoServiceImpl) GetTaskPollInterval() time.Duration {
	return time.Duration(g.info.TaskPollInterval) * time.Second
}

func (g systemInfoServiceImpl) GetExecutorId() string {
	return g.info.ExecutorId
}
