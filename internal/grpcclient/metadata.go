package grpcclient

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// Metadata keys attached to every call.
const (
	AuthorizationKey = "authorization"
	RequestIDKey     = "x-request-id"
)

// AuthMetadata builds the metadata of one call from a freshly read token.
// A missing token is not guarded against: the header is sent as "Bearer ".
func AuthMetadata(ctx context.Context, tokens TokenSource) (metadata.MD, error) {
	token, err := tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return metadata.Pairs(AuthorizationKey, "Bearer "+token), nil
}

func (c *Client) outgoingContext(ctx context.Context) (context.Context, error) {
	md, err := AuthMetadata(ctx, c.tokens)
	if err != nil {
		return nil, err
	}
	if c.requestID != nil {
		if id := c.requestID(ctx); id != "" {
			md.Set(RequestIDKey, id)
		}
	}
	return metadata.NewOutgoingContext(ctx, md), nil
}
