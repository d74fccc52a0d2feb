// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package mimalloc_test

import (
	"testing"
	"unsafe"

	"github.com/aristanetworks/goarista/monotime"
	"go.yuchanns.xyz/mimalloc"
)

func BenchmarkAllocFree(b *testing.B) {
	alloc := mimalloc.MiMalloc{}
	layout := mimalloc.LayoutOf(64)

	var worst uint64
	for b.Loop() {
		start := monotime.Now()
		ptr := alloc.Alloc(layout)
		if elapsed := monotime.Now() - start; elapsed > worst {
			worst = elapsed
		}
		alloc.Dealloc(ptr, layout)
	}
	b.ReportMetric(float64(worst), "worst-ns")
}

func BenchmarkAllocFreeBig(b *testing.B) {
	alloc := mimalloc.MiMalloc{}
	layout := mimalloc.Layout{Size: 1 << 20, Align: 32}

	for b.Loop() {
		ptr := alloc.Alloc(layout)
		alloc.Dealloc(ptr, layout)
	}
}

func BenchmarkAllocZeroed(b *testing.B) {
	alloc := mimalloc.MiMalloc{}
	layout := mimalloc.LayoutOf(4096)

	for b.Loop() {
		ptr := alloc.AllocZeroed(layout)
		alloc.Dealloc(ptr, layout)
	}
}

func BenchmarkRealloc(b *testing.B) {
	alloc := mimalloc.MiMalloc{}
	layout := mimalloc.LayoutOf(64)

	for b.Loop() {
		ptr := alloc.Alloc(layout)
		ptr = alloc.Realloc(ptr, layout, 256)
		alloc.Dealloc(ptr, mimalloc.LayoutOf(256))
	}
}

var sink unsafe.Pointer

func BenchmarkGoHeap(b *testing.B) {
	for b.Loop() {
		buf := make([]byte, 64)
		sink = unsafe.Pointer(&buf[0])
	}
	_ = sink
}
