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

package secctx

import (
	"context"
	"net/http"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/thundercloud/site-audit-service/view"
)

const SystemRoleExt = "systemRole"

type contextKey string

const secCtxKey contextKey = "secCtx"

type securityContextImpl struct {
	userId   string
	userName string
	roles    []string
	isSystem bool
}

func MakeUserContext(r *http.Request) context.Context {
	user := auth.User(r)
	if user == nil {
		return r.Context()
	}
	return context.WithValue(r.Context(), secCtxKey, securityContextImpl{
		userId:   user.GetID(),
		userName: user.GetUserName(),
		roles:    user.GetExtensions().Values(SystemRoleExt),
		isSystem: false,
	})
}

func MakeSysadminContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, secCtxKey, securityContextImpl{userId: "system", userName: "system", isSystem: true})
}

func get(ctx context.Context) (securityContextImpl, bool) {
	val, ok := ctx.Value(secCtxKey).(securityContextImpl)
	return val, ok
}

func IsSystem(ctx context.Context) bool {
	val, ok := get(ctx)
	return ok && val.isSystem
}

func GetUserId(ctx context.Context) string {
	val, ok := get(ctx)
	if !ok {
		return ""
	}
	return val.userId
}

func GetUserName(ctx context.Context) string {
	val, ok := get(ctx)
	if !ok {
		return ""
	}
	return val.userName
}

func HasRole(ctx context.Context, role view.SystemRole) bool {
	val, ok := get(ctx)
	if !ok {
		return false
	}
	for _, r := range val.roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

// IsSysadm reports whether the caller is the system itself or holds the sysadm role.
func IsSysadm(ctx context.Context) bool {
	return IsSystem(ctx) || HasRole(ctx, view.SysadmRole)
}
