/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package backend provides the execution strategies that run the
// row-wise arithmetic of a batch. A backend decides where the work
// runs, never what it computes: every backend produces the same
// result for the same input.
package backend

import (
	"github.com/pkg/errors"
)

// DeviceHint selects an execution backend.
type DeviceHint int

const (
	// Default executes on the calling goroutine.
	Default DeviceHint = iota
	// Accelerated spreads rows over the available CPU cores.
	Accelerated
)

func (h DeviceHint) String() string {
	switch h {
	case Default:
		return "default"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ErrUnavailable is returned when a backend is requested that the
// host cannot provide.
var ErrUnavailable = errors.New("backend: requested execution backend is not available")

// Backend executes row-wise work over a batch of rows.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// ForEachRow calls fn on disjoint ranges [lo, hi) that together
	// cover [0, rows). It returns the first error returned by fn.
	ForEachRow(rows int, fn func(lo, hi int) error) error
}

// New returns the backend selected by hint.
// Requesting Accelerated on a host without parallel capability
// returns an error wrapping ErrUnavailable.
func New(hint DeviceHint) (Backend, error) {
	switch hint {
	case Default:
		return NewHost(), nil
	case Accelerated:
		caps := Detect()
		if !caps.Parallel() {
			return nil, errors.Wrapf(ErrUnavailable, "%s needs more than %d core", hint, caps.Cores)
		}
		return NewParallel(caps.Cores)
	default:
		return nil, errors.Errorf("unknown device hint %d", int(hint))
	}
}
