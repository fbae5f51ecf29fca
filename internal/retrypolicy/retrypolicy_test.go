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

package retrypolicy

import (
	"testing"
	"time"
)

func TestExponentialNextDelay(t *testing.T) {
	p := Default()
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 5 * time.Second},
		{1, 10 * time.Second},
		{2, 20 * time.Second},
		{3, 40 * time.Second},
	}
	for _, c := range cases {
		if got := p.NextDelay(c.attempt); got != c.want {
			t.Errorf("attempt %d: got %v, want %v", c.attempt, got, c.want)
		}
	}
}

func TestExponentialCapsAtMax(t *testing.T) {
	p := Default()
	if got := p.NextDelay(20); got != p.Max {
		t.Fatalf("expected cap at max %v, got %v", p.Max, got)
	}
}

func TestExponentialNegativeAttemptClampsToZero(t *testing.T) {
	p := Default()
	if got := p.NextDelay(-1); got != p.Initial {
		t.Fatalf("expected initial delay for negative attempt, got %v", got)
	}
}
