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

package backend

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of rows handed to one goroutine.
// Smaller batches are not worth the scheduling.
const minChunk = 256

// Parallel splits rows into contiguous chunks and runs them
// concurrently on at most workers goroutines.
type Parallel struct {
	workers  int
	minChunk int
}

// NewParallel returns an instance of the Parallel backend.
// It returns an error if workers is smaller than 1.
func NewParallel(workers int) (*Parallel, error) {
	if workers < 1 {
		return nil, errors.Errorf("number of workers should be at least 1, got %d", workers)
	}

	return &Parallel{
		workers:  workers,
		minChunk: minChunk,
	}, nil
}

// Name returns the backend name including the worker count.
func (p *Parallel) Name() string {
	return fmt.Sprintf("parallel(%d)", p.workers)
}

// Workers returns the maximal number of concurrently running chunks.
func (p *Parallel) Workers() int {
	return p.workers
}

// ForEachRow calls fn concurrently on chunks of rows.
func (p *Parallel) ForEachRow(rows int, fn func(lo, hi int) error) error {
	if rows <= 0 {
		return nil
	}

	chunk := (rows + p.workers - 1) / p.workers
	if chunk < p.minChunk {
		chunk = p.minChunk
	}
	if chunk >= rows {
		return fn(0, rows)
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for lo := 0; lo < rows; lo += chunk {
		hi := min(lo+chunk, rows)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}
