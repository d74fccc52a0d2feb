// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package mimalloc_test

import (
	"time"
	"unsafe"

	"go.yuchanns.xyz/mimalloc"
	"go.yuchanns.xyz/timefall"
)

// nodeAllocator bridges the process-wide provider to timefall's
// two-method allocator contract. timefall frees with the pointer alone,
// so the layout handed to Dealloc is the zero value, which Dealloc never
// reads.
type nodeAllocator struct{}

func (nodeAllocator) Alloc(size uint) unsafe.Pointer {
	return mimalloc.Global().Alloc(mimalloc.LayoutOf(size))
}

func (nodeAllocator) Free(ptr unsafe.Pointer) {
	mimalloc.Global().Dealloc(ptr, mimalloc.Layout{})
}

// Example installs mimalloc as the node allocator of a timer wheel, so
// timer nodes live outside the Go heap for the life of the process.
func Example() {
	timefall.SetAllocator(nodeAllocator{})

	tf := timefall.New[string](10 * time.Millisecond)
	defer tf.Destroy()

	tf.Add(new(string), time.Second)
}
