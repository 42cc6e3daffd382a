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
	"math"

	"github.com/fentec-project/ellipsoid/backend"
	"github.com/fentec-project/ellipsoid/data"
	"github.com/fentec-project/ellipsoid/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Ellipsoid is an axis-aligned ellipsoid given by its center and
// semi-axis lengths. It is immutable and safe for concurrent use
// as long as its samplers are.
type Ellipsoid struct {
	center   data.Vector
	semiAxes data.Vector
	dim      int

	backend   backend.Backend
	normal    sample.Sampler
	uniform   sample.Sampler
	mode      ScaleMode
	divisor   Divisor
	tolerance float64
	slack     float64
	logger    *Logger
}

// New returns an Ellipsoid with the given center and semi-axes.
// The vectors are copied.
//
// It returns a *ShapeMismatchError if either vector is empty, their
// lengths differ, a semi-axis is not strictly positive or any value
// is not finite. An error is also returned if the options are
// invalid or the requested backend is not available.
func New(center, semiAxes data.Vector, opts ...Option) (*Ellipsoid, error) {
	if err := checkShape(center, semiAxes); err != nil {
		return nil, &ShapeMismatchError{
			CenterLen: len(center),
			AxesLen:   len(semiAxes),
			Err:       err,
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	b := o.backend
	if b == nil {
		var err error
		b, err = backend.New(o.hint)
		if err != nil {
			return nil, errors.Wrap(err, "cannot select execution backend")
		}
	}

	src := o.source
	if src == nil {
		src = sample.NewSource()
	}
	normal := o.normal
	if normal == nil {
		normal = sample.NewStandardNormal(src)
	}
	uniform := o.uniform
	if uniform == nil {
		uniform = sample.NewUniform(src)
	}
	logger := o.logger
	if logger == nil {
		logger = NoopLogger()
	}

	e := &Ellipsoid{
		center:    center.Copy(),
		semiAxes:  semiAxes.Copy(),
		dim:       len(center),
		backend:   b,
		normal:    normal,
		uniform:   uniform,
		mode:      o.mode,
		divisor:   o.divisor,
		tolerance: o.tolerance,
		slack:     roundingSlack(center, semiAxes),
		logger:    logger.WithDimension(len(center)),
	}
	e.logger.Debug("ellipsoid created",
		"center", e.center.String(),
		"semi_axes", e.semiAxes.String(),
		"backend", b.Name(),
		"mode", o.mode.String(),
		"divisor", o.divisor.String(),
	)

	return e, nil
}

func checkShape(center, semiAxes data.Vector) error {
	if len(center) == 0 || len(semiAxes) == 0 {
		return ErrEmpty
	}
	if len(center) != len(semiAxes) {
		return ErrLengthMismatch
	}
	if err := center.CheckFinite(); err != nil {
		return errors.WithMessage(err, "center")
	}
	if err := semiAxes.CheckFinite(); err != nil {
		return errors.WithMessage(err, "semi-axes")
	}
	if err := semiAxes.CheckPositive(); err != nil {
		return errors.WithMessage(err, "semi-axes")
	}

	return nil
}

func (o *options) validate() error {
	if o.mode != PerPoint && o.mode != SharedScale {
		return errors.Errorf("unknown scale mode %d", int(o.mode))
	}
	if o.divisor != EuclideanNorm && o.divisor != SquaredNorm {
		return errors.Errorf("unknown divisor %d", int(o.divisor))
	}
	if !(o.tolerance >= 0) || math.IsInf(o.tolerance, 0) {
		return errors.Errorf("tolerance should be a non-negative finite number, got %v", o.tolerance)
	}

	return nil
}

// Dimension returns the number of dimensions N of the ellipsoid.
func (e *Ellipsoid) Dimension() int {
	return e.dim
}

// Center returns a copy of the center.
func (e *Ellipsoid) Center() data.Vector {
	return e.center.Copy()
}

// SemiAxes returns a copy of the semi-axis lengths.
func (e *Ellipsoid) SemiAxes() data.Vector {
	return e.semiAxes.Copy()
}

// Backend returns the execution backend.
func (e *Ellipsoid) Backend() backend.Backend {
	return e.backend
}

// Volume returns the N-dimensional volume of the ellipsoid,
// π^(N/2) / Γ(N/2 + 1) · Πaᵢ.
func (e *Ellipsoid) Volume() float64 {
	half := float64(e.dim) / 2
	return math.Pow(math.Pi, half) / math.Gamma(half+1) * floats.Prod(e.semiAxes)
}
