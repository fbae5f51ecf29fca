// Copyright 2025 Alexander Alten (novatechflow), NovaTechflow (novatechflow.com).
// This project is supported and financed by Scalytics, Inc. (www.scalytics.io).
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rpcctx carries per-call identity and deadline information from
// the gRPC activity layer down through the engines to the forward pool,
// without every function signature growing a ClientMeta parameter.
package rpcctx

import (
	"context"
	"time"
)

type key int

const metaKey key = 0

// ClientMeta identifies the calling SDK instance, carried on every request.
type ClientMeta struct {
	ClientID string
	Language string
	Version  string
}

// WithClientMeta attaches meta to ctx.
func WithClientMeta(ctx context.Context, meta ClientMeta) context.Context {
	return context.WithValue(ctx, metaKey, meta)
}

// ClientMetaFrom extracts the ClientMeta attached by WithClientMeta, if any.
func ClientMetaFrom(ctx context.Context) (ClientMeta, bool) {
	meta, ok := ctx.Value(metaKey).(ClientMeta)
	return meta, ok
}

// WithLongPollingDeadline derives a context whose deadline is reserveMs
// earlier than the caller-specified pollTimeout, so the proxy always has
// time to flush a response before the client's own timeout fires.
func WithLongPollingDeadline(parent context.Context, pollTimeout, reserve time.Duration) (context.Context, context.CancelFunc) {
	effective := pollTimeout - reserve
	if effective < 0 {
		effective = 0
	}
	return context.WithTimeout(parent, effective)
}
