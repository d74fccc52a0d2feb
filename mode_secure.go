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

//go:build mi_secure && !mi_debug

package mimalloc

// The secure variant is built with MI_SECURE=4: guard pages around
// metadata, encrypted free lists and double-free detection, at roughly a
// ten percent throughput cost.

// #cgo LDFLAGS: -lmimalloc-secure
import "C"

// Hardening names the foreign-library variant linked into this build.
const Hardening = "secure"
