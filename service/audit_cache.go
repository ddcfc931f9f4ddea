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
	"errors"
	"sync"
	"time"

	"github.com/buraksezer/olric"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/client"
	"github.com/thundercloud/site-audit-service/view"
)

// AuditCache keeps audit results by content key. Misses and cache failures are
// indistinguishable to callers: the audit is simply recomputed.
type AuditCache interface {
	Get(ctx context.Context, key string) (*view.AuditResult, bool)
	Put(ctx context.Context, key string, result *view.AuditResult)
}

const auditResultsDMapName = "site-audit-results"

func NewAuditCache(op client.OlricProvider, ttl time.Duration) AuditCache {
	return &olricAuditCacheImpl{op: op, ttl: ttl}
}

type olricAuditCacheImpl struct {
	op  client.OlricProvider
	ttl time.Duration

	once    sync.Once
	dmap    *olric.DMap
	dmapErr error
}

func (c *olricAuditCacheImpl) getDMap() (*olric.DMap, error) {
	c.once.Do(func() {
		c.dmap, c.dmapErr = c.op.Get().NewDMap(auditResultsDMapName)
		if c.dmapErr != nil {
			log.Errorf("Failed to create DMap %s: %s", auditResultsDMapName, c.dmapErr.Error())
		}
	})
	return c.dmap, c.dmapErr
}

func (c *olricAuditCacheImpl) Get(ctx context.Context, key string) (*view.AuditResult, bool) {
	dm, err := c.getDMap()
	if err != nil {
		return nil, false
	}
	value, err := dm.Get(key)
	if err != nil {
		if !errors.Is(err, olric.ErrKeyNotFound) {
			log.Warnf("Failed to read audit result %s from cache: %s", key, err.Error())
		}
		return nil, false
	}
	str, ok := value.(string)
	if !ok {
		log.Warnf("Unexpected cached value type %T for key %s", value, key)
		return nil, false
	}
	var result view.AuditResult
	if err := json.Unmarshal([]byte(str), &result); err != nil {
		log.Warnf("Failed to decode cached audit result %s: %s", key, err.Error())
		return nil, false
	}
	return &result, true
}

func (c *olricAuditCacheImpl) Put(ctx context.Context, key string, result *view.AuditResult) {
	dm, err := c.getDMap()
	if err != nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		log.Warnf("Failed to encode audit result %s: %s", key, err.Error())
		return
	}
	if err := dm.PutEx(key, string(data), c.ttl); err != nil {
		log.Warnf("Failed to store audit result %s in cache: %s", key, err.Error())
	}
}

func NewNoopAuditCache() AuditCache {
	return noopAuditCache{}
}

type noopAuditCache struct{}

func (noopAuditCache) Get(ctx context.Context, key string) (*view.AuditResult, bool) {
	return nil, false
}

func (noopAuditCache) Put(ctx context.Context, key string, result *view.AuditResult) {}
