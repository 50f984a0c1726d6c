// Copyright 2026 scl Authors
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

//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func detectTarget() target {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return target{level: DispatchAVX512, width: 64}
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		return target{level: DispatchAVX2, width: 32}
	case cpu.X86.HasSSE2:
		return target{level: DispatchSSE2, width: 16}
	default:
		return scalarTarget
	}
}
