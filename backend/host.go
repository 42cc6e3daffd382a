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

// Host runs all rows on the calling goroutine.
type Host struct{}

// NewHost returns an instance of the Host backend.
func NewHost() *Host {
	return &Host{}
}

// Name returns "host".
func (*Host) Name() string {
	return "host"
}

// ForEachRow calls fn once with the whole range.
func (*Host) ForEachRow(rows int, fn func(lo, hi int) error) error {
	if rows <= 0 {
		return nil
	}

	return fn(0, rows)
}
