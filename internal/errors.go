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

package internal

import (
	"errors"
	"fmt"
)

var malformedStr = "is not of the proper form"

// Sentinel errors describing malformed input data. They are wrapped
// by the errors returned from packages data and ellipsoid.
var (
	ErrEmpty          = errors.New(fmt.Sprintf("input data %s: it is empty", malformedStr))
	ErrRagged         = errors.New(fmt.Sprintf("input data %s: rows differ in length", malformedStr))
	ErrLengthMismatch = errors.New(fmt.Sprintf("input data %s: lengths do not match", malformedStr))
	ErrNonPositive    = errors.New(fmt.Sprintf("input data %s: values should be strictly positive", malformedStr))
	ErrNonFinite      = errors.New(fmt.Sprintf("input data %s: values should be finite", malformedStr))
)
