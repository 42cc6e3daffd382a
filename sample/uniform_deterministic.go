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
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/salsa20"
)

// detBlockSize is the number of keystream bytes generated at once.
const detBlockSize = 1024

// DetSource is a deterministic math/rand/v2 Source. Its values are
// read from the salsa20 keystream determined by the key, so sources
// created with the same key produce the same sequence.
// DetSource is safe for concurrent use.
type DetSource struct {
	mu    sync.Mutex
	key   [32]byte
	nonce uint64
	buf   []byte
	pos   int
}

// NewDetSource returns an instance of DetSource for the given key.
// The key is copied.
func NewDetSource(key *[32]byte) *DetSource {
	s := &DetSource{
		key: *key,
		buf: make([]byte, detBlockSize),
		pos: detBlockSize,
	}

	return s
}

// Uint64 returns the next 8 bytes of the keystream.
func (s *DetSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8

	return v
}

// refill replaces buf with the next block of the keystream.
// Each block is produced with its own nonce.
func (s *DetSource) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)
	clear(s.buf)
	salsa20.XORKeyStream(s.buf, s.buf, nonce, &s.key)
	s.nonce++
	s.pos = 0
}
