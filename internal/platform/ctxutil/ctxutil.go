package ctxutil

import "context"

type requestMetaKey struct{}

type RequestMeta struct {
	RequestID string
}

func WithRequestMeta(ctx context.Context, rm *RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, rm)
}

func GetRequestMeta(ctx context.Context) *RequestMeta {
	val := ctx.Value(requestMetaKey{})
	if rm, ok := val.(*RequestMeta); ok {
		return rm
	}
	return nil
}
