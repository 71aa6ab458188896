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

package num

import "strconv"

// Int 為整數係數，只實作 Number（沒有 sqrt/三角函數），
// 整數係數的 quaternion 可以相乘、共軛，範數則透過 Float64 提升為浮點數。
type Int int64

func (a Int) Add(b Int) Int { return a + b }
func (a Int) Sub(b Int) Int { return a - b }
func (a Int) Mul(b Int) Int { return a * b }

// Div 為截斷除法，除以 0 會 panic（與內建整數相同）。
func (a Int) Div(b Int) Int { return a / b }
func (a Int) Neg() Int      { return -a }

// FromFloat64 向零截斷。
func (Int) FromFloat64(f float64) Int { return Int(f) }
func (a Int) Float64() float64        { return float64(a) }

// Tolerance 為 0：整數只做精確比較。
func (Int) Tolerance() float64 { return 0 }

func (a Int) ApproxEqual(b Int, _ float64) bool { return a == b }

func (Int) IsNaN() bool      { return false }
func (Int) IsInf() bool      { return false }
func (Int) IsFinite() bool   { return true }
func (a Int) IsNormal() bool { return a != 0 }

func (a Int) String() string { return strconv.FormatInt(int64(a), 10) }
