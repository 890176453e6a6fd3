package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/core/model"
	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/pkg/errors"
)

var (
	ErrSkipRequest = errors.New("skip request")
)

type Authenticator interface {
	// Authenticate returns the user of the request, or nil when the
	// authenticator does not recognize it.
	Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error)
}

// Middleware attaches the first user recognized by the authenticators to the
// request context. Requests nobody recognizes continue as the anonymous user.
func Middleware(onError func(w http.ResponseWriter, r *http.Request, err error), authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var user model.User = model.AnonymousUser()

			for _, authenticator := range authenticators {
				authenticated, err := authenticator.Authenticate(w, r)
				if err != nil {
					if errors.Is(err, ErrSkipRequest) {
						return
					}

					slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.WithStack(err)))
					onError(w, r, err)
					return
				}

				if authenticated == nil {
					continue
				}

				user = authenticated
				break
			}

			ctx = httpCtx.SetUser(ctx, user)
			ctx = slogx.WithAttrs(ctx, slog.String("user", model.Username(user)))

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return fn
	}
}
