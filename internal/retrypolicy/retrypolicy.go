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

// Package retrypolicy computes redelivery delays for nacked and
// dead-lettered messages.
package retrypolicy

import "time"

// Exponential computes delay = min(max, initial * multiplier^attempt),
// attempt starting at 0 for the first redelivery.
type Exponential struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
}

// Default returns the standard redelivery policy: initial 5s, max 2h,
// multiplier 2.
func Default() Exponential {
	return Exponential{Initial: 5 * time.Second, Max: 2 * time.Hour, Multiplier: 2}
}

// NextDelay returns the delay before the (attempt+1)-th redelivery, where
// attempt is the number of prior failed attempts (0 for the first retry).
func (p Exponential) NextDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(p.Initial)
	for i := 0; i < attempt; i++ {
		delay *= p.Multiplier
		if delay >= float64(p.Max) {
			return p.Max
		}
	}
	if delay > float64(p.Max) {
		return p.Max
	}
	return time.Duration(delay)
}
