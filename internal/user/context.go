package user

import "context"

type ctxKey int

const userCtxKey ctxKey = iota

// NewContextWithUser stores the e-mail of the authenticated user in ctx.
func NewContextWithUser(baseCtx context.Context, email string) context.Context {
	return context.WithValue(baseCtx, userCtxKey, email)
}

// FromContext returns the e-mail stored by NewContextWithUser.
func FromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userCtxKey).(string)
	return email, ok && email != ""
}
