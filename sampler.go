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

// Package numlab 以可重現的 seed 抽樣隨機單位 quaternion，並交由 stats 檢驗分佈、qcodec 保存樣本。
package numlab

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/qcodec"
	"github.com/zintix-labs/numlab/quat"
	"github.com/zintix-labs/numlab/sdk/core"
	"github.com/zintix-labs/numlab/stats"
)

// Result 為一次抽樣的結果。
type Result struct {
	Report  *stats.Report
	Samples []qcodec.Q // 只有 Keep 為 true 時保留
	Used    time.Duration
}

// 抽樣方法
const (
	Shoemake = "shoemake" // quat.RandomUnit
	Normal   = "normal"   // quat.RandomUnitNormal
)

// Sampler 以指定 PRNG 抽樣均勻的單位 quaternion。
type Sampler struct {
	Name      string // 報告標題
	Bins      int    // 直方圖區間數
	Keep      bool   // 是否保留樣本（供 qcodec 輸出）
	Method    string // Shoemake（預設）或 Normal
	prngName  string
	pf        core.PRNGFactory
	initSeed  int64
	seedmaker *seedMaker
}

// NewSampler 建立 Sampler。seed 為 0 時以加密隨機來源產生。
func NewSampler(name string, prng string, seed int64, bins int) (*Sampler, error) {
	pf, err := core.FactoryByName(prng)
	if err != nil {
		return nil, err
	}
	if bins < 2 {
		return nil, errs.NewWarn("bins must >= 2")
	}
	if prng == "" {
		prng = "pcg64"
	}
	if seed == 0 {
		seed = core.NewSeed()
	}
	return &Sampler{
		Name:      name,
		Bins:      bins,
		prngName:  prng,
		pf:        pf,
		initSeed:  seed,
		seedmaker: newSeedMaker(seed),
	}, nil
}

// Seed 回傳初始 seed，相同 seed 與參數可重現同一份報告。
func (s *Sampler) Seed() int64 { return s.initSeed }

// Sample 單線抽樣 n 個樣本並回傳報告與用時
func (s *Sampler) Sample(n int, showpb bool) (*Result, error) {
	if n < 1 {
		return nil, errs.NewWarn("samples must > 0")
	}
	draw, err := s.drawer(s.pf.New(s.initSeed))
	if err != nil {
		return nil, err
	}
	u := stats.NewUniformity(s.Bins)
	var kept []qcodec.Q
	if s.Keep {
		kept = make([]qcodec.Q, 0, n)
	}

	bar := pb.StartNew(n)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	for range n {
		q := draw()
		u.Add(q)
		if s.Keep {
			kept = append(kept, q)
		}
		bar.Increment()
	}
	used := time.Since(bar.StartTime())
	bar.Finish()

	return &Result{Report: u.Report(s.meta()), Samples: kept, Used: used}, nil
}

// SampleMP 以 mp 個 worker 平行抽樣，每個 worker 抽 n 個，合併後回傳報告與用時。
//
// 每個 worker 的 seed 由初始 seed 依序推導，合併順序固定，因此結果可重現。
func (s *Sampler) SampleMP(n int, mp int, showpb bool) (*Result, error) {
	if mp <= 0 {
		return nil, errs.NewWarn("workers must > 0")
	}
	if n < 1 {
		return nil, errs.NewWarn("samples must > 0")
	}
	sm := newSeedMaker(s.initSeed)
	draws := make([]func() qcodec.Q, mp)
	for i := range draws {
		d, err := s.drawer(s.pf.New(sm.next()))
		if err != nil {
			return nil, err
		}
		draws[i] = d
	}
	us := make([]*stats.Uniformity, mp)
	kept := make([][]qcodec.Q, mp)

	wg := new(sync.WaitGroup)
	wg.Add(mp)
	bar := pb.StartNew(n * mp)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < mp; i++ {
		go func(i int) {
			defer wg.Done()
			u := stats.NewUniformity(s.Bins)
			for range n {
				q := draws[i]()
				u.Add(q)
				if s.Keep {
					kept[i] = append(kept[i], q)
				}
				bar.Increment()
			}
			us[i] = u
		}(i)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	total := us[0]
	for _, u := range us[1:] {
		if err := total.Merge(u); err != nil {
			return nil, err
		}
	}
	var all []qcodec.Q
	if s.Keep {
		all = make([]qcodec.Q, 0, n*mp)
		for _, k := range kept {
			all = append(all, k...)
		}
	}
	return &Result{Report: total.Report(s.meta()), Samples: all, Used: used}, nil
}

// NextSeed 回傳下一個衍生 seed，供呼叫端建立額外的獨立亂數源。並行安全。
func (s *Sampler) NextSeed() int64 { return s.seedmaker.next() }

func (s *Sampler) drawer(p core.PRNG) (func() qcodec.Q, error) {
	switch s.Method {
	case "", Shoemake:
		return func() qcodec.Q { return quat.RandomUnit[num.Real](p) }, nil
	case Normal:
		c := core.New(p)
		return func() qcodec.Q { return quat.RandomUnitNormal[num.Real](c) }, nil
	default:
		return nil, errs.Warnf("unknown sampling method: %q", s.Method)
	}
}

func (s *Sampler) meta() stats.Meta {
	m := s.Method
	if m == "" {
		m = Shoemake
	}
	return stats.Meta{Name: s.Name, PRNG: s.prngName, Seed: s.initSeed, Method: m, Run: uuid.NewString()}
}

const mask63 = uint64(1<<63) - 1

type seedMaker struct {
	state atomic.Uint64 // always in [0, 2^63)
}

func newSeedMaker(seed int64) *seedMaker {
	s := &seedMaker{}
	s.state.Store(uint64(seed) & mask63)
	return s
}

// next 以全週期 LCG 推進 state，再經可逆的 mix63 打散。
//
// 可能被多個 goroutine 同時呼叫，state 以 CAS 迴圈推進，每次呼叫取得唯一的下一個值。
func (s *seedMaker) next() int64 {
	for {
		old := s.state.Load()
		next := (old*6364136223846793005 + 1442695040888963407) & mask63 // LCG mod 2^63
		if s.state.CompareAndSwap(old, next) {
			return int64(mix63(next)) // 一定非負
		}
	}
}

// mix63：只用可逆的 bit 操作與乘奇數（mod 2^63）
func mix63(x uint64) uint64 {
	x &= mask63
	x ^= x >> 30
	x = (x * 0xBF58476D1CE4E5B9) & mask63
	x ^= x >> 27
	x = (x * 0x94D049BB133111EB) & mask63
	x ^= x >> 31
	return x & mask63
}
