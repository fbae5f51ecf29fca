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

// Package wire implements the length-prefixed framing used to exchange
// RemotingCommand payloads with brokers, plus a JSON header codec for
// that command.
package wire

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// Frame is a single size-prefixed RemotingCommand payload.
type Frame struct {
	Length  int32
	Payload []byte
}

// ReadFrame reads one size-prefixed frame from r.
func ReadFrame(r io.Reader) (*Frame, error) {
	var lengthBuf [4]byte
	if _, err := io.ReadFull(r, lengthBuf[:]); err != nil {
		return nil, fmt.Errorf("read frame size: %w", err)
	}
	length := int32(binary.BigEndian.Uint32(lengthBuf[:]))
	if length < 0 {
		return nil, fmt.Errorf("invalid frame length %d", length)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read frame payload: %w", err)
	}
	return &Frame{Length: length, Payload: payload}, nil
}

// WriteFrame writes payload prefixed with its length to w.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > int(^uint32(0)>>1) {
		return fmt.Errorf("payload too large: %d", len(payload))
	}
	var lengthBuf [4]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(payload)))
	if _, err := w.Write(lengthBuf[:]); err != nil {
		return fmt.Errorf("write frame size: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// RemotingCommand is the broker wire envelope: a request/response code, an
// opaque id correlating requests to responses, a response-type flag, and a
// body whose interpretation depends on Code.
type RemotingCommand struct {
	Code         int32
	Version      int32
	Opaque       int32
	Flag         int32
	Remark       string
	ExtFields    map[string]string
	CustomHeader any
	Body         []byte
}

// IsResponseType reports whether the RPC flag bit marking a response is set.
func (c *RemotingCommand) IsResponseType() bool {
	return c.Flag&1 == 1
}

// MarkResponseType sets the RPC flag bit marking this command as a response.
func (c *RemotingCommand) MarkResponseType() {
	c.Flag |= 1
}

// Broker request/response codes this proxy issues over the wire. The full
// code table belongs to the broker protocol this proxy forwards to, not to
// the proxy itself, only the codes this proxy's forward clients actually
// send are declared here.
const (
	CodeSendMessage             int32 = 10
	CodePullMessage             int32 = 11
	CodeEndTransaction          int32 = 37
	CodeSearchOffsetByTimestamp int32 = 29
	CodeGetMaxOffset            int32 = 30
	CodeHeartbeat               int32 = 34
	CodeConsumerSendMsgBack     int32 = 36
	CodePopMessage              int32 = 50
	CodeAckMessage              int32 = 51
	CodeChangeInvisibleTime     int32 = 52

	CodeSuccess      int32 = 0
	CodeSystemBusy   int32 = 2
	CodePollingFull  int32 = 203

	// Broker-initiated back-requests: the broker opens these on the same
	// connection a forward client dialed for its own requests, asking the
	// proxy to relay them to whichever client owns the named group.
	CodeCheckTransactionState    int32 = 39
	CodeGetConsumerRunningInfo   int32 = 307
	CodeConsumeMessageDirectly   int32 = 309
)

// remotingHeader is the on-wire JSON projection of a RemotingCommand's
// header fields, kept separate from Body so the body travels as raw bytes
// rather than base64-inflated JSON.
type remotingHeader struct {
	Code      int32             `json:"code"`
	Version   int32             `json:"version"`
	Opaque    int32             `json:"opaque"`
	Flag      int32             `json:"flag"`
	Remark    string            `json:"remark,omitempty"`
	ExtFields map[string]string `json:"extFields,omitempty"`
}

// Marshal renders c as a frame payload: a 4-byte big-endian header length,
// the JSON-encoded header, then the raw body. The proxy forwards command
// bodies opaquely and never inspects broker-private body encodings, so a
// JSON header plus a raw body is sufficient without a custom header codec.
func (c *RemotingCommand) Marshal() ([]byte, error) {
	header := remotingHeader{
		Code: c.Code, Version: c.Version, Opaque: c.Opaque,
		Flag: c.Flag, Remark: c.Remark, ExtFields: c.ExtFields,
	}
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("marshal remoting command header: %w", err)
	}
	out := make([]byte, 4, 4+len(headerBytes)+len(c.Body))
	binary.BigEndian.PutUint32(out, uint32(len(headerBytes)))
	out = append(out, headerBytes...)
	out = append(out, c.Body...)
	return out, nil
}

// UnmarshalRemotingCommand reverses Marshal.
func UnmarshalRemotingCommand(payload []byte) (*RemotingCommand, error) {
	if len(payload) < 4 {
		return nil, fmt.Errorf("remoting command payload too short")
	}
	headerLen := binary.BigEndian.Uint32(payload[:4])
	if int(headerLen) > len(payload)-4 {
		return nil, fmt.Errorf("remoting command header length %d exceeds payload", headerLen)
	}
	var header remotingHeader
	if err := json.Unmarshal(payload[4:4+headerLen], &header); err != nil {
		return nil, fmt.Errorf("unmarshal remoting command header: %w", err)
	}
	body := payload[4+headerLen:]
	return &RemotingCommand{
		Code: header.Code, Version: header.Version, Opaque: header.Opaque,
		Flag: header.Flag, Remark: header.Remark, ExtFields: header.ExtFields,
		Body: body,
	}, nil
}
