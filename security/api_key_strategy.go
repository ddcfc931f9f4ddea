package security

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/thundercloud/site-audit-service/secctx"
	"github.com/thundercloud/site-audit-service/view"
)

func NewApiKeyStrategy(apiKeys map[string]string) auth.Strategy {
	return &apiKeyStrategyImpl{apiKeys: apiKeys}
}

type apiKeyStrategyImpl struct {
	apiKeys map[string]string
}

func (a apiKeyStrategyImpl) Authenticate(ctx context.Context, r *http.Request) (auth.Info, error) {
	apiKeyHeader := r.Header.Get(ApiKeyHeader)
	if apiKeyHeader == "" {
		return nil, fmt.Errorf("authentication failed: %v is empty", ApiKeyHeader)
	}

	matched := ""
	for name, key := range a.apiKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKeyHeader)) == 1 {
			matched = name
		}
	}
	if matched == "" {
		return nil, fmt.Errorf("authentication failed: %v is not valid", ApiKeyHeader)
	}

	// api keys are issued to integrations, which act as system users
	userExtensions := auth.Extensions{}
	userExtensions.Add(secctx.SystemRoleExt, string(view.SysadmRole))

	return auth.NewDefaultUser(matched, "api-key:"+matched, []string{}, userExtensions), nil
}
