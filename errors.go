// Copyright 2024 The licensefp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classifier

import "github.com/pkg/errors"

// ErrInvalidArgument is the sentinel wrapped by errors raised when a caller
// supplies a threshold or corpus that the detector can't operate on. It is
// surfaced synchronously at the call that caused it; the core never retries
// or mutates state in response.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrCorpusMalformed is the sentinel wrapped by errors raised while building
// a Corpus from reference texts: a non-.txt file, an identifier that fails
// the SPDX-id pattern, or undecodable UTF-8. It is fatal to the construction
// call in progress; it never corrupts a Corpus built previously.
var ErrCorpusMalformed = errors.New("corpus malformed")

// invalidArgument wraps ErrInvalidArgument with a formatted message while
// preserving it as the error's Cause.
func invalidArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// corpusMalformed wraps ErrCorpusMalformed with a formatted message while
// preserving it as the error's Cause.
func corpusMalformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorpusMalformed, format, args...)
}
