package web

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingParams means the request context holds no decoded payload of the wanted type.
var ErrMissingParams = errors.New("web: request params missing")

type paramsCtxKey struct{}

// NewContextWithParams stores the decoded request payload in ctx.
func NewContextWithParams(ctx context.Context, params any) context.Context {
	return context.WithValue(ctx, paramsCtxKey{}, params)
}

// ParamsFromContext returns the payload stored by NewContextWithParams as a T.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	params, ok := ctx.Value(paramsCtxKey{}).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T", ErrMissingParams, zero)
	}
	return params, nil
}
