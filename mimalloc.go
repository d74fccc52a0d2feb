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

// Package mimalloc is a drop-in allocator adapter around the mimalloc
// allocator (https://github.com/microsoft/mimalloc). Mimalloc is a
// general purpose, performance oriented allocator built by Microsoft.
//
// The package exposes the four operations a host runtime or library
// expects of a global memory provider — Alloc, AllocZeroed, Dealloc and
// Realloc — each a direct forward to the corresponding mimalloc entry
// point. The adapter holds no state of its own: MiMalloc is a zero-sized
// value, every call is synchronous, and ownership of returned blocks
// transfers wholly to the caller until Dealloc hands them back.
//
// # Usage
//
//	var alloc mimalloc.MiMalloc
//
//	layout, _ := mimalloc.NewLayout(64, 16)
//	ptr := alloc.Alloc(layout)
//	if ptr != nil {
//		defer alloc.Dealloc(ptr, layout)
//		// ...
//	}
//
// Libraries that accept a pluggable allocator can be pointed at the
// process-wide provider through Global; see the package example.
//
// # Failure
//
// A nil pointer is the failure sentinel for Alloc, AllocZeroed and
// Realloc. The adapter never retries, logs or aborts — out-of-memory
// policy belongs to the caller. Passing Dealloc or Realloc a pointer
// that did not come from this allocator, or freeing the same pointer
// twice, is undefined behavior: mimalloc tracks block metadata
// internally and the adapter performs no validation of its own.
//
// # Concurrency
//
// The adapter is a pure pass-through with no locks. mimalloc itself is
// safe for concurrent use from multiple goroutines and OS threads, so
// every operation here is too.
//
// # Hardening
//
// The linked foreign-library variant is selected at build time with the
// mi_secure or mi_debug build tag (exactly one; selecting both fails the
// build). See the Hardening constant.
package mimalloc

import (
	"unsafe"
)

// MiMalloc forwards each allocator operation to mimalloc.
//
// The zero value is ready to use; all values are interchangeable since
// the type carries no state.
type MiMalloc struct{}

var _ Allocator = MiMalloc{}

// Alloc returns a block of at least layout.Size bytes whose address is a
// multiple of layout.Align, or nil if mimalloc cannot satisfy the
// request. The block's contents are uninitialized.
func (MiMalloc) Alloc(layout Layout) unsafe.Pointer {
	return miMallocAligned(layout.Size, layout.Align)
}

// AllocZeroed is like Alloc but the first layout.Size bytes of the
// returned block are zero. It forwards to mimalloc's dedicated zeroing
// entry point, which can hand back pristine OS pages without touching
// them.
func (MiMalloc) AllocZeroed(layout Layout) unsafe.Pointer {
	return miZallocAligned(layout.Size, layout.Align)
}

// Dealloc releases a block previously returned by Alloc, AllocZeroed or
// Realloc. The layout is accepted for symmetry with the provider
// signature and is not read: mimalloc recovers the block's size and
// alignment from the pointer itself.
func (MiMalloc) Dealloc(ptr unsafe.Pointer, _ Layout) {
	miFree(ptr)
}

// Realloc resizes a block previously allocated with the given layout to
// newSize bytes, preserving the first min(layout.Size, newSize) bytes of
// content and the original alignment. The returned address may differ
// from ptr. On failure Realloc returns nil and the original block is
// untouched and still owned by the caller.
func (MiMalloc) Realloc(ptr unsafe.Pointer, layout Layout, newSize uint) unsafe.Pointer {
	return miReallocAligned(ptr, newSize, layout.Align)
}
