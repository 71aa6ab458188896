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

// Package core 定義 numlab 的亂數來源合約，並提供可重現的 PCG 實作。
//
// 函式庫本身（例如 quat.RandomUnit）只借用 RAND，不建立也不持有亂數來源；
// seed 的生命週期由呼叫端（Sampler / CLI）管理。
package core

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/zintix-labs/numlab/errs"
)

// PRNG 同時支援取樣與狀態保存/還原。
type PRNG interface {
	RAND
	Restorable
}

// Restorable 定義可快照與還原的狀態介面。
type Restorable interface {
	// Snapshot 回傳可用於還原的序列化狀態。
	Snapshot() ([]byte, error)
	// Restore 依序列化狀態還原 PRNG 內部狀態。
	Restore([]byte) error
}

// RAND 定義核心亂數取樣能力。
//
// Float64 的精度由實作決定：PCG64 為 53-bit，PCG32 為 32-bit。
type RAND interface {
	// Uint64 回傳非負 uint64 亂數。
	Uint64() uint64
	// Float64 回傳 [0,1) 的浮點亂數。
	Float64() float64
	// UintN 回傳 [0,max) 的 uint 亂數，若 max == 0 回傳 0。
	UintN(uint) uint
	// IntN 回傳 [0,max) 的 int 亂數，若 max <= 0 回傳 -1。
	IntN(int) int
}

type PRNGFactory interface {
	// New 以指定 seed 建立新的 PRNG。
	//
	// 合約：同一實作與版本下，相同 seed 必須產生相同的輸出序列。
	New(int64) PRNG
}

// DefaultPRNG 以 PCG64 實作 PRNGFactory
type DefaultPRNG struct{}

func (d *DefaultPRNG) New(seed int64) PRNG {
	return NewPCG64WithSeed(seed)
}

func Default() *DefaultPRNG {
	return &DefaultPRNG{}
}

// PCG32Factory 以 PCG32 實作 PRNGFactory
type PCG32Factory struct{}

func (p *PCG32Factory) New(seed int64) PRNG {
	return NewPCG32WithSeed(seed)
}

// FactoryByName 依名稱回傳 PRNGFactory，支援 "pcg64"（預設）與 "pcg32"。
func FactoryByName(name string) (PRNGFactory, error) {
	switch name {
	case "", "pcg64":
		return Default(), nil
	case "pcg32":
		return &PCG32Factory{}, nil
	default:
		return nil, errs.Warnf("unknown prng: %q", name)
	}
}

// NewSeed 以加密隨機來源產生正的 seed，用於使用者未指定 seed 的情況。
func NewSeed() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil || n.Int64() == 0 {
		return 1
	}
	return n.Int64()
}

// Normal 定義標準常態取樣能力。
type Normal interface {
	NormFloat64() float64
}

// Core 封裝 PRNG，並提供常用的連續分佈取樣。
type Core struct {
	PRNG
}

// New 允許使用外部自實現的 PRNG 建立 Core。
func New(rng PRNG) *Core {
	return &Core{rng}
}

// Range 回傳 [lo,hi) 的均勻浮點亂數。
func (c *Core) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*c.Float64()
}

// Angle 回傳 [0,2π) 的均勻角度（弧度）。
func (c *Core) Angle() float64 {
	return 2 * math.Pi * c.Float64()
}

// UnitVector 回傳單位球面上的均勻三維向量。
func (c *Core) UnitVector() [3]float64 {
	z := c.Range(-1, 1)
	phi := c.Angle()
	r := math.Sqrt(1 - z*z)
	return [3]float64{r * math.Cos(phi), r * math.Sin(phi), z}
}

// NormFloat64 回傳標準常態亂數；PRNG 未實作 Normal 時以 Box–Muller 由 Float64 產生。
func (c *Core) NormFloat64() float64 {
	if n, ok := c.PRNG.(Normal); ok {
		return n.NormFloat64()
	}
	u1 := 1 - c.Float64() // (0,1]，避免 log(0)
	u2 := c.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
