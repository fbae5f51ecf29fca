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

// Package v1 translates the v1 gRPC surface onto the canonical engines in
// internal/producer, internal/consumer, and internal/txheartbeat. It holds
// no state and no business logic of its own, every decision belongs to
// the engine it calls.
package v1

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/novatechflow/rmqproxy/internal/consumer"
	"github.com/novatechflow/rmqproxy/internal/endpoint"
	"github.com/novatechflow/rmqproxy/internal/model"
	"github.com/novatechflow/rmqproxy/internal/nameserver"
	"github.com/novatechflow/rmqproxy/internal/producer"
	"github.com/novatechflow/rmqproxy/internal/queueselect"
	"github.com/novatechflow/rmqproxy/internal/relay"
	"github.com/novatechflow/rmqproxy/internal/routecache"
	"github.com/novatechflow/rmqproxy/internal/rpcctx"
	"github.com/novatechflow/rmqproxy/internal/txheartbeat"
	proxyv1 "github.com/novatechflow/rmqproxy/pkg/gen/proxyv1"
)

// Server implements proxyv1.MessagingServiceServer.
type Server struct {
	proxyv1.UnimplementedMessagingServiceServer

	Routes      *routecache.TopicRouteCache
	Producer    *producer.Engine
	Consumer    *consumer.Engine
	TxHeartbeat *txheartbeat.Service
	Relay       *relay.Manager
	Endpoint    endpoint.Converter
}

func (s *Server) QueryRoute(ctx context.Context, req *proxyv1.QueryRouteRequest) (*proxyv1.QueryRouteResponse, error) {
	route, err := s.Routes.GetRoute(ctx, req.GetTopic().GetName())
	if err != nil {
		return nil, mapError(err)
	}
	mqs, err := s.toMessageQueues(route)
	if err != nil {
		return nil, mapError(err)
	}
	return &proxyv1.QueryRouteResponse{
		Status:        ok(),
		MessageQueues: mqs,
	}, nil
}

func (s *Server) QueryAssignment(ctx context.Context, req *proxyv1.QueryAssignmentRequest) (*proxyv1.QueryAssignmentResponse, error) {
	route, err := s.Routes.GetRoute(ctx, req.GetTopic().GetName())
	if err != nil {
		return nil, mapError(err)
	}
	brokers, err := queueselect.SelectAssignment(route)
	if err != nil {
		return nil, mapError(err)
	}
	assignments := make([]*proxyv1.Assignment, 0, len(brokers))
	for _, b := range brokers {
		mq, err := s.toMessageQueue(req.GetTopic().GetName(), b)
		if err != nil {
			return nil, mapError(err)
		}
		assignments = append(assignments, &proxyv1.Assignment{MessageQueue: mq})
	}
	return &proxyv1.QueryAssignmentResponse{Status: ok(), Assignments: assignments}, nil
}

func (s *Server) SendMessage(ctx context.Context, req *proxyv1.SendMessageRequest) (*proxyv1.SendMessageResponse, error) {
	entries := make([]*proxyv1.SendResultEntry, 0, len(req.GetMessages()))
	for _, msg := range req.GetMessages() {
		header := fromMessage(msg)
		result, err := s.Producer.Send(ctx, header)
		if err != nil {
			return nil, mapError(err)
		}
		entries = append(entries, &proxyv1.SendResultEntry{MessageId: result.MsgID, TransactionId: result.TransactionID})
	}
	return &proxyv1.SendMessageResponse{Status: ok(), Entries: entries}, nil
}

func (s *Server) ReceiveMessage(req *proxyv1.ReceiveMessageRequest, stream proxyv1.MessagingService_ReceiveMessageServer) error {
	ctx := stream.Context()
	invisible := time.Duration(req.GetInvisibleDurationMs()) * time.Millisecond
	pollTimeout := time.Duration(req.GetLongPollingTimeoutMs()) * time.Millisecond
	filterExpr := req.GetFilterExpression().GetExpression()
	handles, err := s.Consumer.Receive(ctx, req.GetGroup().GetName(), req.GetMessageQueue().GetTopic().GetName(), invisible, req.GetBatchSize(), pollTimeout, filterExpr)
	if err != nil {
		return mapError(err)
	}
	for _, h := range handles {
		if err := stream.Send(&proxyv1.ReceiveMessageResponse{Content: &proxyv1.ReceiveMessageResponse_Message{Message: toMessage(h)}}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) AckMessage(ctx context.Context, req *proxyv1.AckMessageRequest) (*proxyv1.AckMessageResponse, error) {
	for _, entry := range req.GetEntries() {
		if err := s.Consumer.Ack(ctx, entry.GetReceiptHandle()); err != nil {
			return nil, mapError(err)
		}
	}
	return &proxyv1.AckMessageResponse{Status: ok()}, nil
}

func (s *Server) NackMessage(ctx context.Context, req *proxyv1.NackMessageRequest) (*proxyv1.NackMessageResponse, error) {
	if err := s.Consumer.Nack(ctx, req.GetReceiptHandle(), req.GetDeliveryAttempt()); err != nil {
		return nil, mapError(err)
	}
	return &proxyv1.NackMessageResponse{Status: ok()}, nil
}

func (s *Server) HeartbeatCall(ctx context.Context, req *proxyv1.HeartbeatRequest) (*proxyv1.HeartbeatResponse, error) {
	for _, g := range req.GetGroups() {
		s.TxHeartbeat.AddProducerGroup(ctx, g.GetName(), g.GetName())
	}
	return &proxyv1.HeartbeatResponse{Status: ok()}, nil
}

func (s *Server) HealthCheck(ctx context.Context, req *proxyv1.HealthCheckRequest) (*proxyv1.HealthCheckResponse, error) {
	return &proxyv1.HealthCheckResponse{Status: ok()}, nil
}

func (s *Server) NotifyClientTermination(ctx context.Context, req *proxyv1.NotifyClientTerminationRequest) (*proxyv1.NotifyClientTerminationResponse, error) {
	s.TxHeartbeat.OnProducerGroupOffline(req.GetGroup().GetName())
	if s.Relay != nil {
		if meta, ok := rpcctx.ClientMetaFrom(ctx); ok {
			s.Relay.RemoveChannel(req.GetGroup().GetName(), meta.ClientID)
		}
	}
	return &proxyv1.NotifyClientTerminationResponse{Status: ok()}, nil
}

func (s *Server) EndTransaction(ctx context.Context, req *proxyv1.EndTransactionRequest) (*proxyv1.EndTransactionResponse, error) {
	commit := req.GetResolution() == proxyv1.TransactionResolution_COMMIT
	txID, err := producer.DecodeTransactionID(req.GetTransactionId())
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.Producer.EndTransaction(ctx, txID, commit); err != nil {
		return nil, mapError(err)
	}
	return &proxyv1.EndTransactionResponse{Status: ok()}, nil
}

// PullMessage and QueryOffset return Unimplemented in both LOCAL and CLUSTER
// mode: this server does not offer pull-model consumption or offset
// queries. ReportThreadStackTrace and ReportMessageConsumptionResult answer
// a broker back-request relayed through PollCommand.
func (s *Server) PullMessage(req *proxyv1.PullMessageRequest, stream proxyv1.MessagingService_PullMessageServer) error {
	return status.Error(codes.Unimplemented, "PullMessage is not supported in this deployment mode")
}

func (s *Server) QueryOffset(ctx context.Context, req *proxyv1.QueryOffsetRequest) (*proxyv1.QueryOffsetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "QueryOffset is not supported in this deployment mode")
}

func (s *Server) ReportThreadStackTrace(ctx context.Context, req *proxyv1.ReportThreadStackTraceRequest) (*proxyv1.ReportThreadStackTraceResponse, error) {
	if s.Relay == nil {
		return nil, status.Error(codes.Unimplemented, "relay is not configured in this deployment mode")
	}
	s.Relay.Complete(relay.Response{Nonce: req.GetNonce(), Payload: []byte(req.GetStackTrace())})
	return &proxyv1.ReportThreadStackTraceResponse{Status: ok()}, nil
}

func (s *Server) ReportMessageConsumptionResult(ctx context.Context, req *proxyv1.ReportMessageConsumptionResultRequest) (*proxyv1.ReportMessageConsumptionResultResponse, error) {
	if s.Relay == nil {
		return nil, status.Error(codes.Unimplemented, "relay is not configured in this deployment mode")
	}
	resp := relay.Response{Nonce: req.GetNonce()}
	if !req.GetSuccess() {
		resp.Err = errConsumptionFailed
	}
	s.Relay.Complete(resp)
	return &proxyv1.ReportMessageConsumptionResultResponse{Status: ok()}, nil
}

func (s *Server) PollCommand(req *proxyv1.PollCommandRequest, stream proxyv1.MessagingService_PollCommandServer) error {
	if s.Relay == nil {
		return status.Error(codes.Unimplemented, "PollCommand is not supported in this deployment mode")
	}
	ctx := stream.Context()
	group, clientID := req.GetGroup().GetName(), req.GetClientId()
	mailbox := s.Relay.RegisterChannel(group, clientID)
	defer s.Relay.RemoveChannel(group, clientID)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Relay.Touch(group, clientID)
		case req, ok := <-mailbox:
			if !ok {
				return nil
			}
			if err := stream.Send(&proxyv1.PollCommandResponse{Nonce: req.Nonce, Code: req.Code, Payload: req.Payload}); err != nil {
				return err
			}
		}
	}
}

func ok() *proxyv1.Status {
	return &proxyv1.Status{Code: proxyv1.Code_OK}
}

var errConsumptionFailed = status.Error(codes.Aborted, "client reported consumption failure")

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, nameserver.ErrTopicNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, queueselect.ErrNoWriteableQueue), errors.Is(err, queueselect.ErrNoReadableQueue):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, consumer.ErrInvalidReceiptHandle), errors.Is(err, producer.ErrInvalidTransactionID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, endpoint.ErrMissingEndpoint):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, consumer.ErrThrottled):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, producer.ErrUnavailable), errors.Is(err, consumer.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func fromMessage(msg *proxyv1.Message) model.SendMessageHeader {
	sys := msg.GetSystemProperties()
	return model.SendMessageHeader{
		Topic:      msg.GetTopic().GetName(),
		Tag:        sys.GetTag(),
		Keys:       sys.GetKeys(),
		Properties: msg.GetUserProperties(),
		Body:       msg.GetBody(),
	}
}

func toMessage(h model.ReceiptHandle) *proxyv1.Message {
	return &proxyv1.Message{
		Topic:            &proxyv1.Resource{Name: h.Topic},
		SystemProperties: &proxyv1.SystemProperties{ReceiptHandle: consumer.EncodeReceiptHandle(h)},
	}
}

func (s *Server) toMessageQueues(route model.TopicRouteData) ([]*proxyv1.MessageQueue, error) {
	readable := queueselect.ReadableQueues(route)
	out := make([]*proxyv1.MessageQueue, 0, len(readable))
	for _, mq := range readable {
		ep, err := s.Endpoint.Convert(mq.BrokerAddr)
		if err != nil {
			return nil, err
		}
		out = append(out, &proxyv1.MessageQueue{
			BrokerName: mq.BrokerName,
			QueueId:    mq.QueueID,
			Permission: toPermission(mq.Perm),
			Endpoint:   &proxyv1.Address{Host: ep.Host, Port: ep.Port},
		})
	}
	return out, nil
}

func (s *Server) toMessageQueue(topic string, mq model.SelectableMessageQueue) (*proxyv1.MessageQueue, error) {
	ep, err := s.Endpoint.Convert(mq.BrokerAddr)
	if err != nil {
		return nil, err
	}
	return &proxyv1.MessageQueue{
		Topic:      &proxyv1.Resource{Name: topic},
		BrokerName: mq.BrokerName,
		QueueId:    mq.QueueID,
		Permission: toPermission(mq.Perm),
		Endpoint:   &proxyv1.Address{Host: ep.Host, Port: ep.Port},
	}, nil
}

func toPermission(p model.Perm) proxyv1.Permission {
	switch {
	case p.CanRead() && p.CanWrite():
		return proxyv1.Permission_READ_WRITE
	case p.CanWrite():
		return proxyv1.Permission_WRITE
	case p.CanRead():
		return proxyv1.Permission_READ
	default:
		return proxyv1.Permission_PERMISSION_UNSPECIFIED
	}
}
