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

// Package proxymode supplies the two forward.Dialer implementations the
// proxy can run with: CLUSTER dials a real legacy broker over the
// length-prefixed wire protocol, LOCAL dispatches directly to an
// in-process broker implementation for embedded/test deployments.
// Both satisfy the same forward.BrokerClient interface, so nothing above
// this package needs to know which mode is active.
package proxymode

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/novatechflow/rmqproxy/internal/consumer"
	"github.com/novatechflow/rmqproxy/internal/forward"
	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/relay"
	"github.com/novatechflow/rmqproxy/internal/wire"
)

// backRequestTimeout bounds how long the proxy waits for a connected client
// to answer a broker-initiated back-request before giving up on it.
const backRequestTimeout = 10 * time.Second

// wireClient forwards every BrokerClient call as a RemotingCommand over a
// single persistent TCP connection. A background reader demultiplexes that
// connection: responses are correlated to their waiting roundTrip call by
// opaque id, and frames the broker sends unprompted are broker-initiated
// back-requests, relayed to whichever connected client owns them.
type wireClient struct {
	conn   net.Conn
	opaque int32
	relay  *relay.Manager

	mu      sync.Mutex
	pending map[int32]chan *wire.RemotingCommand
	closed  bool
}

// NewWireDialer returns a forward.Dialer that opens one TCP connection per
// broker address and frames every call as a RemotingCommand. relayMgr may be
// nil, in which case broker-initiated back-requests are dropped rather than
// relayed (acceptable for roles, like the read-consumer pool, that never
// receive them).
func NewWireDialer(dialTimeout time.Duration, relayMgr *relay.Manager) forward.Dialer {
	return func(ctx context.Context, addr string) (forward.BrokerClient, error) {
		d := net.Dialer{Timeout: dialTimeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("proxymode: dial %s: %w", addr, err)
		}
		c := &wireClient{
			conn:    conn,
			relay:   relayMgr,
			pending: make(map[int32]chan *wire.RemotingCommand),
		}
		go c.readLoop()
		return c, nil
	}
}

func (c *wireClient) nextOpaque() int32 {
	c.opaque++
	return c.opaque
}

// readLoop owns all reads from conn. Every frame is either the response to
// an outstanding roundTrip call (delivered to its pending channel) or an
// unsolicited back-request from the broker (dispatched to handleBackRequest
// on its own goroutine so a slow client answer never stalls the connection).
func (c *wireClient) readLoop() {
	for {
		frame, err := wire.ReadFrame(c.conn)
		if err != nil {
			c.failPending()
			return
		}
		cmd, err := wire.UnmarshalRemotingCommand(frame.Payload)
		if err != nil {
			continue
		}
		if cmd.IsResponseType() {
			c.deliver(cmd)
			continue
		}
		go c.handleBackRequest(cmd)
	}
}

func (c *wireClient) deliver(cmd *wire.RemotingCommand) {
	c.mu.Lock()
	ch, ok := c.pending[cmd.Opaque]
	if ok {
		delete(c.pending, cmd.Opaque)
	}
	c.mu.Unlock()
	if ok {
		ch <- cmd
	}
}

func (c *wireClient) failPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for opaque, ch := range c.pending {
		close(ch)
		delete(c.pending, opaque)
	}
}

func (c *wireClient) roundTrip(ctx context.Context, code int32, ext map[string]string, body []byte) (*wire.RemotingCommand, error) {
	opaque := c.nextOpaque()
	cmd := wire.RemotingCommand{Code: code, Opaque: opaque, ExtFields: ext, Body: body}
	payload, err := cmd.Marshal()
	if err != nil {
		return nil, err
	}

	respCh := make(chan *wire.RemotingCommand, 1)
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("proxymode: connection closed")
	}
	c.pending[opaque] = respCh
	c.mu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
	}
	if err := wire.WriteFrame(c.conn, payload); err != nil {
		c.mu.Lock()
		delete(c.pending, opaque)
		c.mu.Unlock()
		return nil, fmt.Errorf("proxymode: write frame: %w", err)
	}

	select {
	case resp, ok := <-respCh:
		if !ok {
			return nil, fmt.Errorf("proxymode: connection closed while awaiting response")
		}
		return resp, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, opaque)
		c.mu.Unlock()
		return nil, ctx.Err()
	}
}

// backRequestTarget extracts which connected client a broker-initiated
// back-request should be relayed to: the producer or consumer group that
// owns the half-message or subscription the broker is asking about, and the
// specific client instance within it.
func backRequestTarget(cmd *wire.RemotingCommand) (group, clientID string) {
	group = cmd.ExtFields["producerGroup"]
	if group == "" {
		group = cmd.ExtFields["consumerGroup"]
	}
	return group, cmd.ExtFields["clientId"]
}

func (c *wireClient) handleBackRequest(cmd *wire.RemotingCommand) {
	if c.relay == nil {
		return
	}
	group, clientID := backRequestTarget(cmd)
	if group == "" || clientID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), backRequestTimeout)
	defer cancel()
	resp, err := c.relay.Relay(ctx, group, clientID, relay.Request{Nonce: strconv.Itoa(int(cmd.Opaque)), Code: cmd.Code, Payload: cmd.Body})

	reply := wire.RemotingCommand{Code: cmd.Code, Opaque: cmd.Opaque, Body: resp.Payload}
	reply.MarkResponseType()
	if err != nil {
		reply.Remark = err.Error()
	}
	payload, merr := reply.Marshal()
	if merr != nil {
		return
	}
	_ = wire.WriteFrame(c.conn, payload)
}

func (c *wireClient) SendAsync(ctx context.Context, addr string, req model.SendMessageHeader) (model.SendResult, error) {
	ext := map[string]string{
		"producerGroup": req.ProducerGroup,
		"topic":         req.Topic,
		"tags":          req.Tag,
		"keys":          req.Keys,
	}
	if req.Transactional {
		ext["transactionPrepared"] = "true"
	}
	resp, err := c.roundTrip(ctx, wire.CodeSendMessage, ext, req.Body)
	if err != nil {
		return model.SendResult{}, err
	}
	return model.SendResult{
		MsgID:           resp.ExtFields["msgId"],
		QueueOffset:     parseOffset(resp.ExtFields["queueOffset"]),
		TransactionID:   resp.ExtFields["transactionId"],
		CommitLogOffset: parseOffset(resp.ExtFields["commitLogOffset"]),
	}, nil
}

// PopAsync issues POP_MESSAGE and returns the broker's raw reply headers
// unparsed; grouping them by (topic, queueId) into receipt handles is
// consumer.Engine's job, it alone knows how many messages were actually
// requested for this (topic, queueId) pair.
func (c *wireClient) PopAsync(ctx context.Context, addr, consumerGroup, topic string, mq model.SelectableMessageQueue, invisibleTime int64, maxMessages int32) (model.PopResult, error) {
	ext := map[string]string{
		"consumerGroup": consumerGroup,
		"topic":         topic,
		"queueId":       strconv.Itoa(int(mq.QueueID)),
		"invisibleTime": strconv.FormatInt(invisibleTime, 10),
		"maxMsgNums":    strconv.Itoa(int(maxMessages)),
	}
	resp, err := c.roundTrip(ctx, wire.CodePopMessage, ext, nil)
	if err != nil {
		return model.PopResult{}, err
	}
	if resp.Code == wire.CodePollingFull {
		return model.PopResult{}, consumer.ErrThrottled
	}
	return model.PopResult{
		PopTime:         parseOffset(resp.ExtFields["popTime"]),
		InvisibleTime:   parseOffset(resp.ExtFields["invisibleTime"]),
		ReviveQueueID:   int32(parseOffset(resp.ExtFields["reviveQid"])),
		StartOffsetInfo: resp.ExtFields["startOffsetInfo"],
		MsgOffsetInfo:   resp.ExtFields["msgOffsetInfo"],
		OrderCountInfo:  resp.ExtFields["orderCountInfo"],
		TagInfo:         resp.ExtFields["tagInfo"],
	}, nil
}

func (c *wireClient) AckAsync(ctx context.Context, addr string, handle model.ReceiptHandle) error {
	ext := map[string]string{
		"topic":     handle.Topic,
		"queueId":   strconv.Itoa(int(handle.QueueID)),
		"extraInfo": consumer.BuildBrokerExtraInfo(handle),
	}
	_, err := c.roundTrip(ctx, wire.CodeAckMessage, ext, nil)
	return err
}

func (c *wireClient) ChangeInvisibleTimeAsync(ctx context.Context, addr string, handle model.ReceiptHandle, invisibleTime int64) error {
	ext := map[string]string{
		"topic":         handle.Topic,
		"queueId":       strconv.Itoa(int(handle.QueueID)),
		"extraInfo":     consumer.BuildBrokerExtraInfo(handle),
		"invisibleTime": strconv.FormatInt(invisibleTime, 10),
	}
	_, err := c.roundTrip(ctx, wire.CodeChangeInvisibleTime, ext, nil)
	return err
}

func (c *wireClient) HeartbeatAsync(ctx context.Context, addr, clientID string, groups []string) error {
	_, err := c.roundTrip(ctx, wire.CodeHeartbeat, map[string]string{"clientId": clientID}, nil)
	return err
}

func (c *wireClient) PullAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, offset int64, maxMessages int32) ([]model.ReceiptHandle, error) {
	ext := map[string]string{
		"queueId":    strconv.Itoa(int(mq.QueueID)),
		"queueOffset": strconv.FormatInt(offset, 10),
		"maxMsgNums": strconv.Itoa(int(maxMessages)),
	}
	_, err := c.roundTrip(ctx, wire.CodePullMessage, ext, nil)
	return nil, err
}

func (c *wireClient) SearchOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue, timestamp int64) (int64, error) {
	ext := map[string]string{"queueId": strconv.Itoa(int(mq.QueueID)), "timestamp": strconv.FormatInt(timestamp, 10)}
	resp, err := c.roundTrip(ctx, wire.CodeSearchOffsetByTimestamp, ext, nil)
	if err != nil {
		return 0, err
	}
	return parseOffset(resp.ExtFields["offset"]), nil
}

func (c *wireClient) GetMaxOffsetAsync(ctx context.Context, addr string, mq model.SelectableMessageQueue) (int64, error) {
	ext := map[string]string{"queueId": strconv.Itoa(int(mq.QueueID))}
	resp, err := c.roundTrip(ctx, wire.CodeGetMaxOffset, ext, nil)
	if err != nil {
		return 0, err
	}
	return parseOffset(resp.ExtFields["offset"]), nil
}

func (c *wireClient) SendMsgBackAsync(ctx context.Context, addr string, handle model.ReceiptHandle, delayLevel int32) error {
	ext := map[string]string{
		"originTopic": handle.Topic,
		"extraInfo":   consumer.BuildBrokerExtraInfo(handle),
		"delayLevel":  strconv.Itoa(int(delayLevel)),
	}
	_, err := c.roundTrip(ctx, wire.CodeConsumerSendMsgBack, ext, nil)
	return err
}

// transactionCommitFlag and transactionRollbackFlag mirror the broker's
// commitOrRollback header values for END_TRANSACTION.
const (
	transactionCommitFlag   = 1
	transactionRollbackFlag = 0
)

func (c *wireClient) EndTransactionAsync(ctx context.Context, addr string, txID model.TransactionID, commit bool) error {
	flag := transactionRollbackFlag
	if commit {
		flag = transactionCommitFlag
	}
	ext := map[string]string{
		"topic":            txID.Topic,
		"transactionId":    txID.BrokerTransactionID,
		"commitLogOffset":  strconv.FormatInt(txID.CommitLogOffset, 10),
		"commitOrRollback": strconv.Itoa(flag),
	}
	_, err := c.roundTrip(ctx, wire.CodeEndTransaction, ext, nil)
	return err
}

func parseOffset(s string) int64 {
	var v int64
	fmt.Sscanf(s, "%d", &v)
	return v
}

// BrokerHandler is what an in-process (LOCAL mode) broker implementation
// provides; it is forward.BrokerClient itself, addr arguments included,
// though there is only ever one in-process broker per dialer.
type BrokerHandler interface {
	forward.BrokerClient
}

// NewLocalDialer returns a forward.Dialer that ignores addr and always
// returns the same in-process handler, used when the proxy and broker run
// in the same binary.
func NewLocalDialer(handler BrokerHandler) forward.Dialer {
	return func(ctx context.Context, addr string) (forward.BrokerClient, error) {
		return handler, nil
	}
}
