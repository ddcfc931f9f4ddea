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

	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/view"
)

type AuthorizationService interface {
	HasAuditReadPermission(ctx context.Context) (bool, error)
	HasAuditWritePermission(ctx context.Context) (bool, error)
	HasManagementPermission(ctx context.Context) (bool, error)
}

func NewAuthorizationService() AuthorizationService {
	return &authorizationServiceImpl{}
}

type authorizationServiceImpl struct {
}

func (a authorizationServiceImpl) HasAuditReadPermission(ctx context.Context) (bool, error) {
	return true, nil // any authenticated user
}

func (a authorizationServiceImpl) HasAuditWritePermission(ctx context.Context) (bool, error) {
	return secctx.IsSysadm(ctx) || secctx.HasRole(ctx, view.AuditorRole), nil
}

func (a authorizationServiceImpl) HasManagementPermission(ctx context.Context) (bool, error) {
	return secctx.IsSysadm(ctx), nil
}
