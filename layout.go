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
	"errors"
	"fmt"
)

// NaturalAlign is the alignment mimalloc guarantees for every
// allocation regardless of the requested one.
const NaturalAlign = 16

// Layout describes an allocation request: a size in bytes and the
// power-of-two byte boundary the returned address must be a multiple of.
//
// A block must be deallocated or resized with the alignment it was
// allocated with. The adapter cannot recover the alignment from the
// pointer alone, so callers carry the Layout alongside the block for its
// whole lifetime.
type Layout struct {
	Size  uint
	Align uint
}

// NewLayout builds a Layout, rejecting a zero size and any alignment
// that is not a power of two. Layout literals skip this validation;
// constructing an invalid one and handing it to the allocator is a
// caller bug with undefined consequences.
func NewLayout(size, align uint) (Layout, error) {
	if size == 0 {
		return Layout{}, errors.New("layout size must be positive")
	}
	if align == 0 || align&(align-1) != 0 {
		return Layout{}, fmt.Errorf("layout alignment %d is not a power of two", align)
	}
	return Layout{Size: size, Align: align}, nil
}

// LayoutOf returns a Layout for size bytes at mimalloc's natural
// alignment, suitable for callers with no stricter requirement.
func LayoutOf(size uint) Layout {
	return Layout{Size: size, Align: NaturalAlign}
}
