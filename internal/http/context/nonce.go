package context

import "context"

const keyNonce contextKey = "nonce"

// Nonce returns the Content-Security-Policy nonce of the current response.
func Nonce(ctx context.Context) string {
	nonce, ok := ctx.Value(keyNonce).(string)
	if !ok {
		return ""
	}

	return nonce
}

func SetNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, keyNonce, nonce)
}
