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
	"runtime"
	"sync"

	"github.com/klauspost/cpuid"
)

// Capabilities describes the compute features of the host.
type Capabilities struct {
	Brand  string
	Cores  int
	AVX2   bool
	AVX512 bool
	FMA3   bool
}

// Parallel reports whether rows can run on more than one core.
func (c Capabilities) Parallel() bool {
	return c.Cores > 1
}

var (
	detectOnce sync.Once
	detected   Capabilities
)

// Detect returns the capabilities of the host. The detection
// runs once, later calls return the cached result.
func Detect() Capabilities {
	detectOnce.Do(func() {
		detected = Capabilities{
			Brand:  cpuid.CPU.BrandName,
			Cores:  runtime.NumCPU(),
			AVX2:   cpuid.CPU.AVX2(),
			AVX512: cpuid.CPU.AVX512F() && cpuid.CPU.AVX512DQ(),
			FMA3:   cpuid.CPU.FMA3(),
		}
	})

	return detected
}
