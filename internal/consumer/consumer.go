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

// Package consumer implements the receive-side engine: pop-model message
// retrieval, receipt-handle issuance, ack, nack with dead-letter promotion,
// and invisibility-duration extension.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/producer"
	"github.com/novatechflow/rmqproxy/internal/queueselect"
	"github.com/novatechflow/rmqproxy/internal/retrypolicy"
	"github.com/novatechflow/rmqproxy/internal/routecache"
)

// ErrUnavailable mirrors producer.ErrUnavailable for the receive path.
var ErrUnavailable = errors.New("consumer: broker unavailable")

// ErrInvalidReceiptHandle is returned by Ack/Nack/ChangeInvisibleDuration
// when the supplied handle fails to decode.
var ErrInvalidReceiptHandle = errors.New("consumer: invalid receipt handle")

// ErrThrottled is returned when the broker answers a pop with POLLING_FULL:
// its revive-queue hold pool is saturated and the caller should back off.
var ErrThrottled = errors.New("consumer: broker polling queue is full")

// Engine is the ConsumerEngine collaborator the v1/v2 activities call into.
type Engine struct {
	routes             *routecache.TopicRouteCache
	forward            *forward.Manager
	producer           *producer.Engine
	readSelector       *queueselect.ReadSelector
	retry              retrypolicy.Exponential
	maxDeliveries      int32
	longPollingReserve time.Duration
}

// New builds a consumer Engine. maxDeliveries is the configured
// maxDeliveryAttempts: a nack at or past this count is forwarded to the DLQ
// instead of retried. longPollingReserve is subtracted from the caller's
// deadline before it is handed to the broker as the pop's own deadline, so
// the proxy always has time left to answer before the client's own timeout
// fires.
func New(routes *routecache.TopicRouteCache, fwd *forward.Manager, prod *producer.Engine, maxDeliveries int32, longPollingReserve time.Duration) *Engine {
	return &Engine{
		routes:             routes,
		forward:            fwd,
		producer:           prod,
		readSelector:       queueselect.NewReadSelector(),
		retry:              retrypolicy.Default(),
		maxDeliveries:      maxDeliveries,
		longPollingReserve: longPollingReserve,
	}
}

// Receive pops up to maxMessages from a queue selected for (topic,
// consumerGroup), issuing a fresh receipt handle for each returned message.
// invisibleTime is how long the popped message stays hidden from other
// consumers before automatic redelivery. pollTimeout bounds how long the pop
// itself may block the broker's side (the long-polling window); filterExpr
// is the client's tag subscription, messages that don't match it are acked
// on the broker and silently dropped rather than returned.
func (e *Engine) Receive(ctx context.Context, consumerGroup, topic string, invisibleTime time.Duration, maxMessages int32, pollTimeout time.Duration, filterExpr string) ([]model.ReceiptHandle, error) {
	route, err := e.routes.GetRoute(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("consumer: resolve route for %q: %w", topic, err)
	}
	mq, err := e.readSelector.Select(route, consumerGroup, topic)
	if err != nil {
		return nil, fmt.Errorf("consumer: select queue for %q: %w", topic, err)
	}
	client, err := e.forward.Pool(forward.RoleReadConsumer).Get(ctx, mq.BrokerAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	popCtx := ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		popCtx, cancel = context.WithDeadline(ctx, deadline.Add(-e.longPollingReserve))
		defer cancel()
	}
	if pollTimeout > 0 {
		var cancel context.CancelFunc
		popCtx, cancel = context.WithTimeout(popCtx, pollTimeout)
		defer cancel()
	}

	result, err := client.PopAsync(popCtx, mq.BrokerAddr, consumerGroup, topic, mq, int64(invisibleTime/time.Millisecond), maxMessages)
	if err != nil {
		if errors.Is(err, ErrThrottled) {
			return nil, err
		}
		e.forward.Pool(forward.RoleReadConsumer).Evict(mq.BrokerAddr)
		return nil, fmt.Errorf("consumer: pop from %s: %w", mq.BrokerAddr, err)
	}

	handles := synthesizeReceiptHandles(topic, mq.BrokerName, mq.QueueID, result)
	survivors := make([]model.ReceiptHandle, 0, len(handles))
	for _, h := range handles {
		if matchesTagFilter(filterExpr, h.Tag) {
			survivors = append(survivors, h)
			continue
		}
		if err := client.AckAsync(ctx, mq.BrokerAddr, h); err != nil {
			return nil, fmt.Errorf("consumer: ack filtered-out message: %w", err)
		}
	}
	return survivors, nil
}

// resolveBrokerAddr looks up the current address for handle's broker by
// re-resolving handle.Topic's route, the proxy never persists a
// handle-to-address mapping, since the handle itself must carry everything
// needed to act on it later.
func (e *Engine) resolveBrokerAddr(ctx context.Context, handle model.ReceiptHandle) (string, error) {
	route, err := e.routes.GetRoute(ctx, handle.Topic)
	if err != nil {
		return "", fmt.Errorf("consumer: resolve route for %q: %w", handle.Topic, err)
	}
	idx := queueselect.NewBrokerAddrIndex(route.BrokerDatas)
	addr, ok := idx[handle.BrokerName]
	if !ok {
		return "", fmt.Errorf("consumer: broker %q not present in route for %q", handle.BrokerName, handle.Topic)
	}
	return addr, nil
}

// Ack confirms successful consumption of the message identified by token,
// releasing its revive-queue entry on the broker.
func (e *Engine) Ack(ctx context.Context, token string) error {
	handle, err := DecodeReceiptHandle(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceiptHandle, err)
	}
	addr, err := e.resolveBrokerAddr(ctx, handle)
	if err != nil {
		return err
	}
	client, err := e.forward.Pool(forward.RoleReadConsumer).Get(ctx, addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.AckAsync(ctx, addr, handle); err != nil {
		return fmt.Errorf("consumer: ack: %w", err)
	}
	return nil
}

// Nack records a failed consumption attempt. Below maxDeliveries it is
// redelivered after an exponential backoff delay; at or past the threshold
// it is forwarded to the dead-letter queue, and only acknowledged on the
// broker once that DLQ send succeeds (so a DLQ failure leaves the message
// eligible for redelivery rather than silently dropping it).
func (e *Engine) Nack(ctx context.Context, token string, deliveryAttempt int32) error {
	handle, err := DecodeReceiptHandle(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceiptHandle, err)
	}
	if deliveryAttempt < e.maxDeliveries {
		delayLevel := delayLevelFor(e.retry.NextDelay(int(deliveryAttempt)))
		return e.producer.SendMessageBack(ctx, handle, delayLevel)
	}

	if err := e.producer.SendMessageBack(ctx, handle, deadLetterDelayLevel); err != nil {
		return fmt.Errorf("consumer: forward to dead-letter queue: %w", err)
	}
	addr, err := e.resolveBrokerAddr(ctx, handle)
	if err != nil {
		return err
	}
	client, err := e.forward.Pool(forward.RoleReadConsumer).Get(ctx, addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.AckAsync(ctx, addr, handle); err != nil {
		return fmt.Errorf("consumer: ack after dead-letter send: %w", err)
	}
	return nil
}

// deadLetterDelayLevel is a sentinel delay level the broker recognizes as
// "route straight to %DLQ%", distinct from the normal 1-18 retry ladder.
const deadLetterDelayLevel int32 = -1

func delayLevelFor(d time.Duration) int32 {
	// The broker's retry ladder is expressed as discrete delay levels, not
	// raw durations; this proxy picks the coarsest level whose delay does
	// not exceed d; callers needing more precision use ChangeInvisibleDuration
	// directly against an in-flight pop instead of a nack.
	levels := []time.Duration{
		1 * time.Second, 5 * time.Second, 10 * time.Second, 30 * time.Second,
		1 * time.Minute, 2 * time.Minute, 3 * time.Minute, 4 * time.Minute,
		5 * time.Minute, 6 * time.Minute, 7 * time.Minute, 8 * time.Minute,
		9 * time.Minute, 10 * time.Minute, 20 * time.Minute, 30 * time.Minute,
		1 * time.Hour, 2 * time.Hour,
	}
	level := int32(1)
	for i, l := range levels {
		if l <= d {
			level = int32(i + 1)
		}
	}
	return level
}

// ChangeInvisibleDuration extends (or shortens) how long an in-flight pop
// stays hidden from other consumers. The broker call returns no handle of
// its own; the handle returned here is the decoded original with
// InvisibleTime set to the new window.
func (e *Engine) ChangeInvisibleDuration(ctx context.Context, token string, invisibleTime time.Duration) (model.ReceiptHandle, error) {
	handle, err := DecodeReceiptHandle(token)
	if err != nil {
		return model.ReceiptHandle{}, fmt.Errorf("%w: %v", ErrInvalidReceiptHandle, err)
	}
	addr, err := e.resolveBrokerAddr(ctx, handle)
	if err != nil {
		return model.ReceiptHandle{}, err
	}
	client, err := e.forward.Pool(forward.RoleReadConsumer).Get(ctx, addr)
	if err != nil {
		return model.ReceiptHandle{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	newInvisible := int64(invisibleTime / time.Millisecond)
	if err := client.ChangeInvisibleTimeAsync(ctx, addr, handle, newInvisible); err != nil {
		return model.ReceiptHandle{}, fmt.Errorf("consumer: change invisible duration: %w", err)
	}
	// The broker accepts the new window against the old handle's extraInfo
	// and invalidates it; the handle returned here is the one the caller
	// must use from now on.
	handle.InvisibleTime = newInvisible
	return handle, nil
}
