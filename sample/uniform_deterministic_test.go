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

package sample_test

import (
	"sync"
	"testing"

	"github.com/fentec-project/ellipsoid/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomKey(t *testing.T) *[32]byte {
	u, err := sample.NewUniformRange(0, 256, nil)
	require.NoError(t, err)

	var key [32]byte
	for i := range key {
		r, err := u.Sample()
		require.NoError(t, err)
		key[i] = byte(r)
	}

	return &key
}

func TestDetSource_Reproducible(t *testing.T) {
	key := randomKey(t)

	s1 := sample.NewDetSource(key)
	s2 := sample.NewDetSource(key)

	// cross several keystream blocks
	for i := 0; i < 1000; i++ {
		assert.Equal(t, s1.Uint64(), s2.Uint64())
	}
}

func TestDetSource_DifferentKeys(t *testing.T) {
	key := randomKey(t)
	other := *key
	other[0] ^= 1

	s1 := sample.NewDetSource(key)
	s2 := sample.NewDetSource(&other)

	same := 0
	for i := 0; i < 100; i++ {
		if s1.Uint64() == s2.Uint64() {
			same++
		}
	}
	assert.Zero(t, same)
}

func TestDetSource_Concurrent(t *testing.T) {
	key := randomKey(t)
	s := sample.NewDetSource(key)

	const workers, draws = 8, 500
	seen := make([][]uint64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < draws; i++ {
				seen[w] = append(seen[w], s.Uint64())
			}
		}(w)
	}
	wg.Wait()

	// every keystream word is handed out exactly once
	ref := sample.NewDetSource(key)
	want := make(map[uint64]int, workers*draws)
	for i := 0; i < workers*draws; i++ {
		want[ref.Uint64()]++
	}
	for _, vals := range seen {
		for _, v := range vals {
			want[v]--
		}
	}
	for _, c := range want {
		assert.Zero(t, c)
	}
}

func TestUniformDet(t *testing.T) {
	key := randomKey(t)

	u1 := sample.NewUniform(sample.NewDetSource(key))
	u2 := sample.NewUniform(sample.NewDetSource(key))
	for i := 0; i < 100; i++ {
		v1, err := u1.Sample()
		require.NoError(t, err)
		v2, err := u2.Sample()
		require.NoError(t, err)

		assert.Equal(t, v1, v2)
		assert.True(t, v1 >= 0 && v1 < 1)
	}
}
