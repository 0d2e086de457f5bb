// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package probe

import "os"

// FS abstracts the read-only filesystem checks performed while collecting
// configuration state. Implementations must not mutate anything.
type FS interface {
	// Exists reports whether path refers to an existing file or directory.
	Exists(path string) bool

	// Readable reports whether path exists and the current user can open it
	// for reading.
	Readable(path string) bool
}

// OSFS is the production FS backed by the real filesystem.
type OSFS struct{}

// Exists reports whether path exists.
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Readable reports whether path can be opened for reading.
func (OSFS) Readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
