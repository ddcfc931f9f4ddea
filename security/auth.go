package security

import (
	"fmt"
	"time"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/jwt"
	"github.com/shaj13/go-guardian/v2/auth/strategies/union"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/fifo"
	_ "github.com/shaj13/libcache/lru"
)

var strategy union.Union

const ApiKeyHeader = "api-key"

const SessionCookieName = "site-audit-session"

type AuthConfig struct {
	// ApiKeys maps a client name to its key.
	ApiKeys   map[string]string
	JwtSecret string
}

func SetupGoGuardian(config AuthConfig) error {
	strategies, err := makeStrategies(config)
	if err != nil {
		return err
	}
	strategy = union.New(strategies...)
	return nil
}

func makeStrategies(config AuthConfig) ([]auth.Strategy, error) {
	var strategies []auth.Strategy
	if config.JwtSecret != "" {
		cache := libcache.LRU.New(1000)
		cache.SetTTL(time.Minute * 60)
		cache.RegisterOnExpired(func(key, _ interface{}) {
			cache.Delete(key)
		})
		strategies = append(strategies, jwt.New(cache, makeSecretKeeper(config.JwtSecret)))
		strategies = append(strategies, NewCookieTokenStrategy([]byte(config.JwtSecret)))
	}
	if len(config.ApiKeys) > 0 {
		strategies = append(strategies, NewApiKeyStrategy(config.ApiKeys))
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("no authentication method configured: set API_KEYS or JWT_SECRET")
	}
	return strategies, nil
}

func makeSecretKeeper(secret string) jwt.SecretsKeeper {
	return jwt.StaticSecret{
		ID:        "secret-id",
		Secret:    []byte(secret),
		Algorithm: jwt.HS256,
	}
}
