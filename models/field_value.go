package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FieldValue : 숫자 또는 문자열로 들어오는 수정 값
// 폼 입력은 "12.5" 같은 문자열로 오기도 해서 둘 다 받는다.
type FieldValue struct {
	Text string
}

// UnmarshalJSON : 숫자/문자열/null 모두 허용
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		v.Text = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &v.Text)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v.Text = n.String()
	return nil
}

// MarshalJSON : 숫자로 읽히면 숫자로, 아니면 문자열로
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if f := v.Float(); !math.IsNaN(f) && !math.IsInf(f, 0) {
		return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
	}
	return json.Marshal(v.Text)
}

// Float : 숫자로 변환 (빈 값이나 숫자가 아니면 NaN)
func (v FieldValue) Float() float64 {
	s := strings.TrimSpace(v.Text)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// String : 원본 문자열
func (v FieldValue) String() string {
	return v.Text
}

// NumberValue : 숫자 값으로 FieldValue 생성
func NumberValue(f float64) FieldValue {
	return FieldValue{Text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// TextValue : 문자열 값으로 FieldValue 생성
func TextValue(s string) FieldValue {
	return FieldValue{Text: s}
}
