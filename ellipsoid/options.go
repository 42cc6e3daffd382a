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

package ellipsoid

import (
	"math/rand/v2"

	"github.com/fentec-project/ellipsoid/backend"
	"github.com/fentec-project/ellipsoid/sample"
)

// DefaultTolerance is the largest value of the implicit function
// still accepted as inside the ellipsoid. It absorbs rounding in
// points generated right at the boundary.
const DefaultTolerance = 1e-9

// ScaleMode selects how the radial scale of sampled points is drawn.
type ScaleMode int

const (
	// PerPoint draws one u ~ U[0, 1) per point and scales the
	// direction by u^(1/N). Points are uniform by volume.
	PerPoint ScaleMode = iota
	// SharedScale draws a single u ~ U[0, 1) per call and scales
	// every direction of the batch by it. All points of a call lie
	// on one shell. Kept for parity with earlier output.
	SharedScale
)

func (m ScaleMode) String() string {
	switch m {
	case PerPoint:
		return "per-point"
	case SharedScale:
		return "shared"
	default:
		return "unknown"
	}
}

// Divisor selects what a normal vector is divided by to become
// a direction.
type Divisor int

const (
	// EuclideanNorm divides by sqrt(Σ z²), giving a uniform
	// direction on the unit sphere.
	EuclideanNorm Divisor = iota
	// SquaredNorm divides by Σ z². The result is not a unit vector
	// and its distribution is not uniform; points may fall outside
	// the ellipsoid and fail validation. Kept for parity with
	// earlier output.
	SquaredNorm
)

func (d Divisor) String() string {
	switch d {
	case EuclideanNorm:
		return "euclidean"
	case SquaredNorm:
		return "squared"
	default:
		return "unknown"
	}
}

type options struct {
	hint      backend.DeviceHint
	backend   backend.Backend
	mode      ScaleMode
	divisor   Divisor
	tolerance float64
	source    rand.Source
	normal    sample.Sampler
	uniform   sample.Sampler
	logger    *Logger
}

func defaultOptions() options {
	return options{
		hint:      backend.Default,
		mode:      PerPoint,
		divisor:   EuclideanNorm,
		tolerance: DefaultTolerance,
	}
}

// Option configures an Ellipsoid.
type Option func(*options)

// WithDeviceHint selects the execution backend through backend.New.
// It is ignored when WithBackend is given.
func WithDeviceHint(hint backend.DeviceHint) Option {
	return func(o *options) {
		o.hint = hint
	}
}

// WithBackend sets the execution backend directly.
func WithBackend(b backend.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithScaleMode sets how radial scales are drawn. Defaults to PerPoint.
func WithScaleMode(mode ScaleMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithDivisor sets how normal vectors are turned into directions.
// Defaults to EuclideanNorm.
func WithDivisor(d Divisor) Option {
	return func(o *options) {
		o.divisor = d
	}
}

// WithTolerance sets the tolerance of the inside check done on
// every sampled batch and by Contains. Defaults to DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithSource sets the source of randomness of both the normal and
// the uniform sampler. Defaults to sample.NewSource.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithKey makes sampling reproducible: the randomness is read from
// a sample.DetSource determined by key.
func WithKey(key *[32]byte) Option {
	return func(o *options) {
		o.source = sample.NewDetSource(key)
	}
}

// WithSamplers replaces the standard normal sampler used for
// directions and the U[0, 1) sampler used for radial scales.
// A nil sampler keeps the default one.
func WithSamplers(normal, uniform sample.Sampler) Option {
	return func(o *options) {
		o.normal = normal
		o.uniform = uniform
	}
}

// WithLogger sets the logger. A nil logger disables logging,
// which is also the default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
