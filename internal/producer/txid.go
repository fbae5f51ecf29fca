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

package producer

import (
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"

	"github.com/novatechflow/rmqproxy/internal/model"
)

// ErrInvalidTransactionID is returned by DecodeTransactionID when the
// supplied proxy transaction id fails to decode.
var ErrInvalidTransactionID = fmt.Errorf("producer: invalid transaction id")

// EncodeTransactionID renders a TransactionID as the opaque proxy
// transaction id a producer is handed on a transactional Send and must echo
// back on EndTransaction. The proxy keeps no transaction state of its own,
// so the broker identity, topic, and commit-log coordinates all travel
// inside the token itself, mirroring consumer.EncodeReceiptHandle.
func EncodeTransactionID(txID model.TransactionID) string {
	fields := []string{
		txID.Topic,
		txID.BrokerName,
		txID.BrokerTransactionID,
		strconv.FormatInt(txID.CommitLogOffset, 10),
		strconv.FormatInt(txID.QueueOffset, 10),
	}
	raw := strings.Join(fields, "|")
	checksum := crc32.ChecksumIEEE([]byte(raw))
	payload := fmt.Sprintf("%s|%08x", raw, checksum)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// DecodeTransactionID reverses EncodeTransactionID, validating the trailing
// checksum before trusting any field. The returned TransactionID's
// ProxyTransactionID is set back to token, so callers never need to carry
// both forms around separately.
func DecodeTransactionID(token string) (model.TransactionID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return model.TransactionID{}, fmt.Errorf("%w: %v", ErrInvalidTransactionID, err)
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 6 {
		return model.TransactionID{}, ErrInvalidTransactionID
	}
	body := strings.Join(parts[:5], "|")
	wantSum, err := strconv.ParseUint(parts[5], 16, 32)
	if err != nil {
		return model.TransactionID{}, ErrInvalidTransactionID
	}
	if crc32.ChecksumIEEE([]byte(body)) != uint32(wantSum) {
		return model.TransactionID{}, ErrInvalidTransactionID
	}
	commitLogOffset, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return model.TransactionID{}, ErrInvalidTransactionID
	}
	queueOffset, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return model.TransactionID{}, ErrInvalidTransactionID
	}
	return model.TransactionID{
		ProxyTransactionID:  token,
		Topic:               parts[0],
		BrokerName:          parts[1],
		BrokerTransactionID: parts[2],
		CommitLogOffset:     commitLogOffset,
		QueueOffset:         queueOffset,
	}, nil
}
