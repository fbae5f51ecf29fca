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

package consumer

import (
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"

	"github.com/novatechflow/rmqproxy/internal/model"
)

// BuildBrokerExtraInfo renders h's fields in the same order ExtraInfoUtil
// uses on the broker side, for the extraInfo ext field an ack, nack,
// send-message-back, or change-invisible-time request echoes back to the
// broker. It is the pre-checksum, pre-base64 core also used by
// EncodeReceiptHandle.
func BuildBrokerExtraInfo(h model.ReceiptHandle) string {
	queueOffset := "-"
	if h.HasQueueOffset {
		queueOffset = strconv.FormatInt(h.QueueOffset, 10)
	}
	fields := []string{
		strconv.FormatInt(h.StartOffset, 10),
		strconv.FormatInt(h.RetrieveTime, 10),
		strconv.FormatInt(h.InvisibleTime, 10),
		strconv.FormatInt(int64(h.ReviveQueueID), 10),
		h.Topic,
		h.BrokerName,
		strconv.FormatInt(int64(h.QueueID), 10),
		queueOffset,
	}
	return strings.Join(fields, "|")
}

// EncodeReceiptHandle renders a ReceiptHandle as the opaque token returned
// to clients on pop/pull. The proxy is stateless, so every field the ack,
// nack, and changeInvisibleDuration path needs travels inside the token
// itself.
func EncodeReceiptHandle(h model.ReceiptHandle) string {
	raw := BuildBrokerExtraInfo(h)
	checksum := crc32.ChecksumIEEE([]byte(raw))
	payload := fmt.Sprintf("%s|%08x", raw, checksum)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// ErrMalformedReceiptHandle indicates the token failed structural or
// checksum validation.
var ErrMalformedReceiptHandle = fmt.Errorf("consumer: malformed receipt handle")

// DecodeReceiptHandle reverses EncodeReceiptHandle, validating the trailing
// checksum before trusting any field.
func DecodeReceiptHandle(token string) (model.ReceiptHandle, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return model.ReceiptHandle{}, fmt.Errorf("%w: %v", ErrMalformedReceiptHandle, err)
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 9 {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}
	body := strings.Join(parts[:8], "|")
	wantSum, err := strconv.ParseUint(parts[8], 16, 32)
	if err != nil {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}
	if crc32.ChecksumIEEE([]byte(body)) != uint32(wantSum) {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}

	startOffset, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}
	retrieveTime, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}
	invisibleTime, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}
	reviveQID, err := strconv.ParseInt(parts[3], 10, 32)
	if err != nil {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}
	queueID, err := strconv.ParseInt(parts[6], 10, 32)
	if err != nil {
		return model.ReceiptHandle{}, ErrMalformedReceiptHandle
	}

	h := model.ReceiptHandle{
		StartOffset:   startOffset,
		RetrieveTime:  retrieveTime,
		InvisibleTime: invisibleTime,
		ReviveQueueID: int32(reviveQID),
		Topic:         parts[4],
		BrokerName:    parts[5],
		QueueID:       int32(queueID),
	}
	if parts[7] != "-" {
		queueOffset, err := strconv.ParseInt(parts[7], 10, 64)
		if err != nil {
			return model.ReceiptHandle{}, ErrMalformedReceiptHandle
		}
		h.QueueOffset = queueOffset
		h.HasQueueOffset = true
	}
	return h, nil
}
