// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package listdiff

import "znkr.io/listdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// BatchUpdates normalizes the result for consumers that apply operations sequentially against
// positional indexes. It's equivalent to calling [Result.ForBatchUpdates] on the result.
func BatchUpdates() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.BatchUpdates = true
		return config.BatchUpdates
	}
}

// Check validates every result against its inputs and panics if the result is inconsistent. This
// is a debugging aid, it roughly doubles the cost of a comparison.
func Check() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Check = true
		return config.Check
	}
}
