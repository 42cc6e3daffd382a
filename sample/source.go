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

package sample

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// cryptoSource is a rand.Source reading from crypto/rand.
type cryptoSource struct{}

// NewSource returns a rand.Source whose values are read
// from crypto/rand. It is safe for concurrent use.
func NewSource() rand.Source {
	return cryptoSource{}
}

func (cryptoSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// the system randomness is gone, nothing sensible can be sampled
		panic("sample: crypto/rand read failed: " + err.Error())
	}

	return binary.LittleEndian.Uint64(buf[:])
}
