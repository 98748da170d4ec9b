package nutrition

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Quantity 保留使用者輸入的原始數量（數字或字串），以便原樣回傳
type Quantity struct {
	raw json.RawMessage
}

// NumberQuantity 由數字建立數量
func NumberQuantity(v float64) Quantity {
	return Quantity{raw: json.RawMessage(strconv.FormatFloat(v, 'f', -1, 64))}
}

// TextQuantity 由字串建立數量
func TextQuantity(s string) Quantity {
	b, _ := json.Marshal(s)
	return Quantity{raw: b}
}

// UnmarshalJSON 實作 json.Unmarshaler
func (q *Quantity) UnmarshalJSON(b []byte) error {
	q.raw = append(q.raw[:0], b...)
	return nil
}

// MarshalJSON 實作 json.Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	if len(q.raw) == 0 {
		return []byte("null"), nil
	}
	return q.raw, nil
}

// Missing 數量未提供（缺欄位、null 或空字串）
func (q Quantity) Missing() bool {
	trimmed := bytes.TrimSpace(q.raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var s string
	if json.Unmarshal(trimmed, &s) == nil {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Float 解析為有限浮點數；字串取開頭的數字部分（"200g" 為 200）。無法解析時 ok 為 false
func (q Quantity) Float() (float64, bool) {
	trimmed := bytes.TrimSpace(q.raw)
	if len(trimmed) == 0 {
		return 0, false
	}

	text := string(trimmed)
	var s string
	if json.Unmarshal(trimmed, &s) == nil {
		text = strings.TrimSpace(s)
	}

	prefix := leadingNumber(text)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// zeroNumber JSON 數字 0（字串 "0" 不算）
func (q Quantity) zeroNumber() bool {
	trimmed := bytes.TrimSpace(q.raw)
	if len(trimmed) == 0 || trimmed[0] == '"' {
		return false
	}
	v, err := strconv.ParseFloat(string(trimmed), 64)
	return err == nil && v == 0
}

// leadingNumber 回傳最長的十進位浮點數前綴：[+-]digits[.digits][e[+-]digits]
func leadingNumber(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}

	// 指數部分必須有數字才算
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String 原始輸入文字
func (q Quantity) String() string {
	return string(q.raw)
}
