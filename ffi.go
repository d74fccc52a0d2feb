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

// This file is the only seam between Go and the foreign allocator:
// exactly four entry points, all stable C ABI. Link flags live in the
// mode_*.go files so the hardening tag decides which library variant is
// linked. A missing library is a link-time failure, never a runtime
// condition.

// #include <mimalloc.h>
import "C"

import "unsafe"

func miMallocAligned(size, align uint) unsafe.Pointer {
	return C.mi_malloc_aligned(C.size_t(size), C.size_t(align))
}

func miZallocAligned(size, align uint) unsafe.Pointer {
	return C.mi_zalloc_aligned(C.size_t(size), C.size_t(align))
}

func miFree(ptr unsafe.Pointer) {
	C.mi_free(ptr)
}

func miReallocAligned(ptr unsafe.Pointer, newSize, align uint) unsafe.Pointer {
	return C.mi_realloc_aligned(ptr, C.size_t(newSize), C.size_t(align))
}
