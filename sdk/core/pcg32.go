// Copyright 2025 Zintix Labs
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

package core

import (
	"encoding/binary"
	"math/bits"

	"github.com/zintix-labs/numlab/errs"
)

const (
	pcg32Mult      = 6364136223846793005
	pcg32StateSize = 16
)

// PCG32 為 64-bit 狀態、32-bit 輸出的 PCG (XSH RR) 產生器。
// Float64 只有 32-bit 精度，適合對照 float32 係數的取樣。
//
// 不同 stream 為互不重疊的序列；Advance 可在 O(log n) 內跳過 n 步。
type PCG32 struct {
	state uint64
	inc   uint64 // 必為奇數
}

// NewPCG32WithSeed 以指定 seed 建立 PCG32（stream 固定為 1）。
func NewPCG32WithSeed(seed int64) *PCG32 {
	return NewPCG32WithStream(seed, 1)
}

// NewPCG32WithStream 依 PCG 建議流程初始化：先以 stream 步進一次，加上 seed，再步進一次。
func NewPCG32WithStream(seed int64, stream uint64) *PCG32 {
	r := &PCG32{inc: stream<<1 | 1}
	r.step()
	r.state += uint64(seed)
	r.step()
	return r
}

// Uint32 回傳非負整數uint32亂數。
func (r *PCG32) Uint32() uint32 {
	old := r.state
	r.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// Uint64 由兩次 32-bit 輸出拼接（高位在前）。
func (r *PCG32) Uint64() uint64 {
	hi := uint64(r.Uint32())
	return hi<<32 | uint64(r.Uint32())
}

// Float64 回傳 [0,1) 的浮點亂數（32-bit 精度）。
func (r *PCG32) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// UintN 產出[0,n) 的uint整數，若 max == 0 回傳 0
func (r *PCG32) UintN(max uint) uint {
	if max == 0 {
		return 0
	}
	return uint(r.below(uint64(max)))
}

// IntN 回傳 [0,n) 的亂數；若 n <= 0 回傳 -1。
func (r *PCG32) IntN(max int) int {
	if max <= 0 {
		return -1
	}
	return int(r.below(uint64(max)))
}

// Advance 跳過 delta 步，等同呼叫 delta 次 Uint32（Brown 的 LCG 跳躍演算法）。
func (r *PCG32) Advance(delta uint64) {
	accMult, accPlus := uint64(1), uint64(0)
	curMult, curPlus := uint64(pcg32Mult), r.inc
	for delta > 0 {
		if delta&1 == 1 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta >>= 1
	}
	r.state = accMult*r.state + accPlus
}

// Snapshot 以 big-endian 輸出 state 與 inc。
func (r *PCG32) Snapshot() ([]byte, error) {
	b := make([]byte, 0, pcg32StateSize)
	b = binary.BigEndian.AppendUint64(b, r.state)
	return binary.BigEndian.AppendUint64(b, r.inc), nil
}

// Restore 還原 Snapshot 的輸出。
func (r *PCG32) Restore(data []byte) error {
	if len(data) != pcg32StateSize {
		return errs.Warnf("pcg32 restore: want %d bytes, got %d", pcg32StateSize, len(data))
	}
	inc := binary.BigEndian.Uint64(data[8:])
	if inc&1 == 0 {
		return errs.NewWarn("pcg32 restore: increment must be odd")
	}
	r.state, r.inc = binary.BigEndian.Uint64(data[:8]), inc
	return nil
}

func (r *PCG32) step() { r.state = r.state*pcg32Mult + r.inc }

// below 回傳 [0,n) 的無偏亂數（Lemire 乘法取高位 + 拒絕採樣）。
// n 在 32-bit 內只消耗一次 32-bit 輸出。
func (r *PCG32) below(n uint64) uint64 {
	if n <= 1<<32 {
		n32 := uint64(n)
		m := uint64(r.Uint32()) * n32
		if uint32(m) < uint32(n32) {
			thresh := uint32(-n32) % uint32(n32)
			for uint32(m) < thresh {
				m = uint64(r.Uint32()) * n32
			}
		}
		return m >> 32
	}
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}
