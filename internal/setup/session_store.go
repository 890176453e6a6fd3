package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/pettymatters/internal/config"
	"github.com/bornholm/pettymatters/internal/crypto"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs, err := getSessionKeyPairs(conf.HTTP.Session.Keys)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(conf.HTTP.Session.Keys) == 0 {
		slog.WarnContext(ctx, "no session keys configured, forum logins will not survive a restart")
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	sessionStore.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = conf.HTTP.Session.Cookie.Path
	sessionStore.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	sessionStore.Options.Secure = conf.HTTP.Session.Cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

// getSessionKeyPairs turns the configured keys into alternating
// authentication and encryption keys. Without keys a random authentication
// key is generated.
func getSessionKeyPairs(keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		key, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		return [][]byte{key}, nil
	}

	keyPairs := make([][]byte, 0, len(keys))
	for i, k := range keys {
		if k == "" {
			return nil, errors.Errorf("session key #%d is empty", i)
		}

		// Encryption keys select AES-128, AES-192 or AES-256
		if i%2 == 1 {
			switch len(k) {
			case 16, 24, 32:
			default:
				return nil, errors.Errorf("session key #%d is an encryption key and must be 16, 24 or 32 bytes long, got %d", i, len(k))
			}
		}

		keyPairs = append(keyPairs, []byte(k))
	}

	return keyPairs, nil
}
