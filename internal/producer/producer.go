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

// Package producer implements the send-side engine: route resolution,
// queue selection, forwarding to the owning broker, and transaction
// completion.
package producer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/queueselect"
	"github.com/novatechflow/rmqproxy/internal/routecache"
)

// ErrUnavailable indicates the broker could not be reached after retries,
// distinct from a retriable per-message rejection such as FLOW_CONTROL.
var ErrUnavailable = errors.New("producer: broker unavailable")

// Engine is the ProducerEngine collaborator the v1/v2 activities call into.
type Engine struct {
	routes   *routecache.TopicRouteCache
	forward  *forward.Manager
	selector *queueselect.WriteSelector
}

// New builds a producer Engine over a shared route cache and forward pool
// manager.
func New(routes *routecache.TopicRouteCache, fwd *forward.Manager) *Engine {
	return &Engine{routes: routes, forward: fwd, selector: queueselect.NewWriteSelector()}
}

// Send resolves the topic route, selects a writable queue, and forwards the
// message to its owning broker.
func (e *Engine) Send(ctx context.Context, header model.SendMessageHeader) (model.SendResult, error) {
	route, err := e.routes.GetRoute(ctx, header.Topic)
	if err != nil {
		return model.SendResult{}, fmt.Errorf("producer: resolve route for %q: %w", header.Topic, err)
	}
	mq, err := e.selector.Select(route, header.Topic, header.ProducerGroup)
	if err != nil {
		return model.SendResult{}, fmt.Errorf("producer: select queue for %q: %w", header.Topic, err)
	}
	client, err := e.forward.Pool(forward.RoleProducer).Get(ctx, mq.BrokerAddr)
	if err != nil {
		e.routes.Invalidate(header.Topic)
		return model.SendResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	result, err := client.SendAsync(ctx, mq.BrokerAddr, header)
	if err != nil {
		e.forward.Pool(forward.RoleProducer).Evict(mq.BrokerAddr)
		return model.SendResult{}, fmt.Errorf("producer: send to %s: %w", mq.BrokerAddr, err)
	}
	result.QueueID = mq.QueueID
	result.BrokerName = mq.BrokerName
	if header.Transactional {
		result.TransactionID = EncodeTransactionID(model.TransactionID{
			Topic:               header.Topic,
			BrokerName:          mq.BrokerName,
			BrokerTransactionID: result.TransactionID,
			CommitLogOffset:     result.CommitLogOffset,
			QueueOffset:         result.QueueOffset,
		})
	}
	return result, nil
}

// SendBatch forwards several messages for the same topic/group one at a
// time through Send, in order, stopping at the first failure. The uuid batch
// id it synthesizes appears only in that failure's error text; it is not
// sent to the broker, and the messages are not sent as one batch request.
func (e *Engine) SendBatch(ctx context.Context, headers []model.SendMessageHeader) ([]model.SendResult, error) {
	if len(headers) == 0 {
		return nil, nil
	}
	batchID := uuid.NewString()
	results := make([]model.SendResult, 0, len(headers))
	for _, h := range headers {
		res, err := e.Send(ctx, h)
		if err != nil {
			return results, fmt.Errorf("producer: batch %s: %w", batchID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// SendMessageBack hands a message the consumer side rejected back to its
// broker with the given delay level: consumer.Engine.Nack calls it with a
// retry delay level below the group's delivery limit, and with the
// dead-letter sentinel level at or past it. handle.BrokerName is resolved
// through handle.Topic's route the same way EndTransaction resolves its
// broker.
func (e *Engine) SendMessageBack(ctx context.Context, handle model.ReceiptHandle, delayLevel int32) error {
	route, err := e.routes.GetRoute(ctx, handle.Topic)
	if err != nil {
		return fmt.Errorf("producer: resolve route for %q: %w", handle.Topic, err)
	}
	addr, ok := queueselect.NewBrokerAddrIndex(route.BrokerDatas)[handle.BrokerName]
	if !ok {
		return fmt.Errorf("producer: broker %q not present in route for %q", handle.BrokerName, handle.Topic)
	}
	client, err := e.forward.Pool(forward.RoleProducer).Get(ctx, addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.SendMsgBackAsync(ctx, addr, handle, delayLevel); err != nil {
		return fmt.Errorf("producer: send message back: %w", err)
	}
	return nil
}

// EndTransaction notifies the owning broker of a transactional message's
// final commit/rollback decision. txID.BrokerName is a logical broker name,
// not a dialable address, so the current address is resolved through the
// topic's route the same way consumer.Engine.resolveBrokerAddr does.
func (e *Engine) EndTransaction(ctx context.Context, txID model.TransactionID, commit bool) error {
	route, err := e.routes.GetRoute(ctx, txID.Topic)
	if err != nil {
		return fmt.Errorf("producer: resolve route for %q: %w", txID.Topic, err)
	}
	idx := queueselect.NewBrokerAddrIndex(route.BrokerDatas)
	addr, ok := idx[txID.BrokerName]
	if !ok {
		return fmt.Errorf("producer: broker %q not present in route for %q", txID.BrokerName, txID.Topic)
	}
	client, err := e.forward.Pool(forward.RoleTransactionProducer).Get(ctx, addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.EndTransactionAsync(ctx, addr, txID, commit); err != nil {
		return fmt.Errorf("producer: end transaction: %w", err)
	}
	return nil
}
