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

// Package errs 提供 numlab 統一的錯誤型別。
//
// 數值型別本身不回傳錯誤（NaN/Inf 自然傳遞）；只有邊界檢查（bounded）、
// 軌道解碼（track）、編解碼（qcodec）與 CLI 會產生 *E。
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLevel : Error 分級，使最上層理解問題嚴重程度
//
//   - Fatal：無法繼續（I/O 失敗、外部錯誤）
//   - Warn：輸入不合法，修正參數或資料後可重試
//   - Log：僅需記錄
type ErrLevel uint8

const (
	None ErrLevel = iota
	Fatal
	Warn
	Log
)

func (lv ErrLevel) String() string {
	switch lv {
	case Fatal:
		return "fatal"
	case Warn:
		return "warn"
	case Log:
		return "log"
	default:
		return ""
	}
}

// ErrLv 回傳等級名稱。
func ErrLv(errlv ErrLevel) string { return errlv.String() }

// E 是統一的錯誤型別。
// Message 為主訊息；Extra 為額外上下文（例如檔名、欄位）；Cause 串接下層錯誤。
type E struct {
	Message string
	Extra   string
	Cause   error
	ErrLv   ErrLevel
}

// Error 輸出 "level: message [extra]: cause"。
func (e *E) Error() string {
	var sb strings.Builder
	if lv := e.ErrLv.String(); lv != "" {
		sb.WriteString(lv)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Extra != "" {
		sb.WriteString(" [" + e.Extra + "]")
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(causeText(e.Cause))
	}
	return sb.String()
}

// 下層若也是 *E，不重複輸出等級
func causeText(err error) string {
	if e, ok := err.(*E); ok {
		c := *e
		c.ErrLv = None
		return c.Error()
	}
	return err.Error()
}

// Unwrap 讓 errors.Is / errors.As 能夠向下展開。
func (e *E) Unwrap() error { return e.Cause }

// IsFatal 回傳是否需要立即中止。
func (e *E) IsFatal() bool { return e.ErrLv == Fatal }

func New(errLv ErrLevel, msg string) *E {
	return &E{Message: msg, ErrLv: errLv}
}

func NewFatal(msg string) *E { return New(Fatal, msg) }
func NewWarn(msg string) *E  { return New(Warn, msg) }

func Fatalf(format string, a ...any) *E { return New(Fatal, fmt.Sprintf(format, a...)) }
func Warnf(format string, a ...any) *E  { return New(Warn, fmt.Sprintf(format, a...)) }

// Wrap 以訊息包裝底層錯誤。
//
// ErrLevel 規則：
//   - cause 鏈上有 *E：沿用其 ErrLv。
//   - 其他錯誤（標準庫或三方依賴）：一律視為 Fatal。
func Wrap(cause error, msg string) *E {
	return WrapWithExtra(cause, msg, "")
}

// WrapWithExtra 同 Wrap，並附加上下文。
func WrapWithExtra(cause error, msg string, extra string) *E {
	r := New(Level(cause), msg)
	r.Extra = extra
	r.Cause = cause
	return r
}

// Attach 以指定等級包裝 cause，用於把領域錯誤（例如越界）降級為可處理的錯誤。
func Attach(errLv ErrLevel, cause error, msg string) *E {
	r := New(errLv, msg)
	r.Cause = cause
	return r
}

// AsErr 取出錯誤鏈上第一個 *E。
func AsErr(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Level 回傳錯誤的等級：nil 為 None，鏈上沒有 *E 的錯誤視為 Fatal。
func Level(err error) ErrLevel {
	if err == nil {
		return None
	}
	if e, ok := AsErr(err); ok && e.ErrLv != None {
		return e.ErrLv
	}
	return Fatal
}

// ExitCode 將錯誤對應到 CLI 結束碼：成功 0、輸入不合法 2、其餘 1。
func ExitCode(err error) int {
	switch Level(err) {
	case None, Log:
		return 0
	case Warn:
		return 2
	default:
		return 1
	}
}
