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
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/buraksezer/olric"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/client"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/utils"
	"github.com/thundercloud/site-audit-service/view"
)

type PublishEventListener interface {
	Start()
	listen(message olric.DTopicMessage)
}

func NewPublishEventListener(op client.OlricProvider, taskService AuditTaskService) PublishEventListener {
	pel := publishEventListenerImpl{
		op:          op,
		taskService: taskService,
		isReadyWg:   sync.WaitGroup{},
	}
	return &pel
}

type publishEventListenerImpl struct {
	op                    client.OlricProvider
	taskService           AuditTaskService
	websitePublishedTopic *olric.DTopic
	isReadyWg             sync.WaitGroup
}

func (p *publishEventListenerImpl) Start() {
	p.isReadyWg.Add(1)
	utils.SafeAsync(func() {
		p.initWebsitePublishedDTopic()
	})
}

const WebsitePublishedTopicName = "website-published"

func (p *publishEventListenerImpl) listen(message olric.DTopicMessage) {
	notification, err := parseWebsitePublishedNotification(message.Message)
	if err != nil {
		log.Warnf("PublishEventListener.listen: %v, event will not be processed", err)
		return
	}

	task, err := p.taskService.EnqueueTask(secctx.MakeSysadminContext(context.Background()), view.AuditTaskRequest{
		WebsiteId: notification.WebsiteId,
		Url:       notification.Url,
		Scope:     view.ScopeComprehensive,
	})
	if err != nil {
		log.Errorf("PublishEventListener.listen: failed to enqueue audit for %+v: %v", notification, err)
		return
	}
	log.Debugf("PublishEventListener.listen: website %s published, audit task %s", notification.WebsiteId, task.Id)
}

func parseWebsitePublishedNotification(msg interface{}) (*view.WebsitePublishedNotification, error) {
	str, ok := msg.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected event %+v", msg)
	}

	var notification view.WebsitePublishedNotification
	if err := json.Unmarshal([]byte(str), &notification); err != nil {
		return nil, fmt.Errorf("error unmarshalling publish notification: %w", err)
	}
	if strings.TrimSpace(notification.WebsiteId) == "" || strings.TrimSpace(notification.Url) == "" {
		return nil, fmt.Errorf("publish notification %s has no websiteId or url", str)
	}
	return &notification, nil
}

func (p *publishEventListenerImpl) initWebsitePublishedDTopic() {
	defer p.isReadyWg.Done()

	var err error
	p.websitePublishedTopic, err = p.op.Get().NewDTopic(WebsitePublishedTopicName, 10000, olric.UnorderedDelivery)
	if err != nil {
		log.Errorf("Failed to create DTopic %s: %s", WebsitePublishedTopicName, err.Error())
		return
	}

	_, err = p.websitePublishedTopic.AddListener(p.listen)
	if err != nil {
		log.Errorf("Failed to add listener to DTopic %s: %s", WebsitePublishedTopicName, err.Error())
	}
}
