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
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/client"
	"github.com/thundercloud/site-audit-service/controller"
	"github.com/thundercloud/site-audit-service/db"
	"github.com/thundercloud/site-audit-service/entity"
	"github.com/thundercloud/site-audit-service/repository"
	"github.com/thundercloud/site-audit-service/security"
	"github.com/thundercloud/site-audit-service/service"
)

const pageFetchTimeout = 30 * time.Second

func main() {
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		panic(err)
	}
	setLogLevel(systemInfoService.GetLogLevel())

	cp := db.NewConnectionProvider(systemInfoService.GetCredsFromEnv())
	err = db.CreateSchema(context.Background(), cp,
		(*entity.SiteAudit)(nil),
		(*entity.QualityValidation)(nil),
		(*entity.AuditTask)(nil))
	if err != nil {
		log.Fatalf("Failed to prepare database schema: %v", err)
	}

	op, err := client.NewOlricProvider(systemInfoService.GetOlricDiscoveryMode(), systemInfoService.GetOlricReplicaCount(),
		systemInfoService.GetNamespace(), systemInfoService.GetOlricPeers())
	if err != nil {
		log.Fatalf("Failed to start olric node: %v", err)
	}

	err = security.SetupGoGuardian(security.AuthConfig{
		ApiKeys:   systemInfoService.GetApiKeys(),
		JwtSecret: systemInfoService.GetJwtSecret(),
	})
	if err != nil {
		log.Fatalf("Failed to setup authentication: %v", err)
	}

	var llmClient client.LLMClient
	if systemInfoService.GetOpenAIApiKey() != "" {
		llmClient, err = client.NewOpenaiClient(systemInfoService.GetOpenAIApiKey(), systemInfoService.GetOpenAIModel(), systemInfoService.GetOpenAIProxy())
		if err != nil {
			log.Fatalf("Failed to create openai client: %v", err)
		}
	} else {
		log.Warn("OPENAI_API_KEY is not set, auto-fix is disabled")
	}

	auditRepo := repository.NewSiteAuditRepository(cp)
	validationRepo := repository.NewQualityValidationRepository(cp)
	taskRepo := repository.NewAuditTaskRepository(cp)

	authorizationService := service.NewAuthorizationService()
	auditCache := service.NewAuditCache(op, systemInfoService.GetAuditCacheTTL())
	auditService := service.NewAuditService(auditRepo, auditCache)
	qualityService := service.NewQualityService(validationRepo, systemInfoService.GetMinQualityScore())
	taskService := service.NewAuditTaskService(taskRepo)
	autofixService := service.NewAutofixService(auditService, llmClient)
	cleanupService := service.NewCleanupService(cp)

	taskProcessor := service.NewAuditTaskProcessor(taskRepo, auditService, client.NewSiteClient(pageFetchTimeout),
		systemInfoService.GetExecutorId(), systemInfoService.GetTaskPollInterval())
	publishEventListener := service.NewPublishEventListener(op, taskService)

	auditController := controller.NewAuditController(auditService, authorizationService)
	validationController := controller.NewValidationController(qualityService, authorizationService)
	taskController := controller.NewAuditTaskController(taskService, authorizationService)
	autofixController := controller.NewAutofixController(autofixService, authorizationService)
	llmTuningController := controller.NewLLMTuningController(llmClient, authorizationService)
	schemaController := controller.NewSchemaController()
	cleanupController := controller.NewCleanupController(cleanupService, authorizationService, systemInfoService)
	healthController := controller.NewHealthController()

	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc("/api/v1/audits", security.Secure(auditController.CreateAudit)).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/audits/{auditId}", security.Secure(auditController.GetAudit)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/websites/{websiteId}/audits", security.Secure(auditController.GetWebsiteAudits)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/websites/{websiteId}/audits", security.Secure(cleanupController.ClearWebsiteData)).Methods(http.MethodDelete)

	router.HandleFunc("/api/v1/validations", security.Secure(validationController.ValidatePage)).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/validations/{validationId}", security.Secure(validationController.GetValidation)).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/audit-tasks", security.Secure(taskController.CreateTask)).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/audit-tasks/{taskId}", security.Secure(taskController.GetTask)).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/autofix", security.Secure(autofixController.FixPage)).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/llm/settings", security.Secure(llmTuningController.GetSettings)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/llm/prompt", security.Secure(llmTuningController.UpdateFixPagePrompt)).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/llm/model", security.Secure(llmTuningController.UpdateModel)).Methods(http.MethodPut)

	router.HandleFunc("/api/v1/schema/audit-result", security.Secure(schemaController.GetAuditResultSchema)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/schema/validation-result", security.Secure(schemaController.GetValidationResultSchema)).Methods(http.MethodGet)

	router.HandleFunc("/live", security.NoSecure(healthController.Live)).Methods(http.MethodGet)
	router.HandleFunc("/ready", security.NoSecure(healthController.Ready)).Methods(http.MethodGet)

	taskProcessor.Start()
	publishEventListener.Start()
	healthController.SetReady()

	debug.SetGCPercent(30)

	srv := makeServer(systemInfoService, router)
	log.Fatalf("%v", srv.ListenAndServe())
}

func setLogLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, INFO will be used", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func makeServer(systemInfoService service.SystemInfoService, r *mux.Router) *http.Server {
	listenAddr := systemInfoService.GetListenAddress()

	log.Infof("Listen addr = %s", listenAddr)

	var corsOptions []handlers.CORSOption

	corsOptions = append(corsOptions, handlers.AllowedHeaders([]string{"Connection", "Accept-Encoding", "Content-Encoding", "X-Requested-With", "Content-Type", "Authorization", security.ApiKeyHeader}))

	allowedOrigin := systemInfoService.GetOriginAllowed()
	if allowedOrigin != "" {
		corsOptions = append(corsOptions, handlers.AllowedOrigins([]string{allowedOrigin}))
	}
	corsOptions = append(corsOptions, handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"}))

	return &http.Server{
		Handler:      handlers.CompressHandler(handlers.CORS(corsOptions...)(r)),
		Addr:         listenAddr,
		WriteTimeout: 600 * time.Second,
		ReadTimeout:  60 * time.Second,
	}
}
