package grpcclient

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// unary runs one request/response cycle: attach fresh auth metadata, invoke
// the stub method, then either normalize the failure or unwrap the response.
// The response is converted only after the transport reports success.
func unary[Req, Resp, Out any](
	ctx context.Context,
	c *Client,
	resource Resource,
	method string,
	req Req,
	invoke func(context.Context, Req, ...grpc.CallOption) (Resp, error),
	unwrap func(Resp) Out,
) (Out, error) {
	var zero Out

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	callCtx, err := c.outgoingContext(ctx)
	if err != nil {
		return zero, c.normalizer.Normalize(ctx, resource, method, err)
	}

	start := time.Now()
	resp, err := invoke(callCtx, req)
	c.metrics.ObserveRPC(method, codeName(err), time.Since(start))
	if err != nil {
		return zero, c.normalizer.Normalize(ctx, resource, method, err)
	}

	return unwrap(resp), nil
}

// discard is the unwrapper of calls whose response carries nothing.
func discard[Resp any](Resp) struct{} {
	return struct{}{}
}

func codeName(err error) string {
	if err == nil {
		return "OK"
	}
	st, ok := status.FromError(err)
	if !ok {
		return "Network"
	}
	return st.Code().String()
}
