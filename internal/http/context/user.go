package context

import (
	"context"

	"github.com/bornholm/pettymatters/internal/core/model"
)

const keyUser contextKey = "user"

// User returns the user attached to the request context. Requests that went
// through no authentication are attributed to the anonymous user.
func User(ctx context.Context) model.User {
	user, ok := ctx.Value(keyUser).(model.User)
	if !ok {
		return model.AnonymousUser()
	}

	return user
}

func SetUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}
