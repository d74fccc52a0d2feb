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

package mimalloc

import (
	"sync/atomic"
	"unsafe"
)

// Allocator is the capability set a global memory provider exposes to a
// host runtime or library: allocate, allocate zeroed, deallocate and
// resize, each parameterized by a Layout.
//
// Implementations must be safe for concurrent use by multiple goroutines
// without external synchronization.
//
// Every successful Alloc, AllocZeroed or Realloc transfers ownership of
// the returned block to the caller; Dealloc transfers it back. A block
// must only ever be released or resized with the alignment it was
// allocated with — the runtime upholds this on the allocator's behalf,
// and implementations are not expected to check it.
type Allocator interface {
	Alloc(layout Layout) unsafe.Pointer
	AllocZeroed(layout Layout) unsafe.Pointer
	Dealloc(ptr unsafe.Pointer, layout Layout)
	Realloc(ptr unsafe.Pointer, layout Layout, newSize uint) unsafe.Pointer
}

var global Allocator = MiMalloc{}

var globalInit atomic.Int32

// Global returns the process-wide allocator, MiMalloc unless SetGlobal
// replaced it.
func Global() Allocator {
	return global
}

// SetGlobal installs a replacement process-wide allocator.
//
// The provided alloc must not be nil. SetGlobal can only be called once;
// subsequent calls will panic. Call it at program start, before any
// goroutine reads Global.
//
// Panics:
//   - if alloc is nil.
//   - if called more than once.
func SetGlobal(alloc Allocator) {
	if alloc == nil {
		panic("allocator cannot be nil")
	}
	if globalInit.Add(1) != 1 {
		panic("global allocator can only be set once")
	}
	global = alloc
}
