// apiclient/errors.go
package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// 什么都挖不出来时的保底文案
const fallbackMessage = "could not save"

// APIError 一次失败调用的全部上下文。Message 的提取顺序是固定的，
// 任何失败最终都能给用户一句话
type APIError struct {
	Status     int
	StatusText string
	Body       []byte
	Err        error // 传输层错误，没拿到响应时才有
}

func (e *APIError) Error() string { return e.Message() }

func (e *APIError) Unwrap() error { return e.Err }

// Message 提取顺序：响应体（字符串先试 JSON 再退回原文；对象按
// message → error → description 取第一个，error 字段可以再嵌一层对象）
// → 传输错误文案 → 有意义的状态文案 → 保底文案
func (e *APIError) Message() string {
	if m := messageFromBody(e.Body); m != "" {
		return m
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if t := strings.TrimSpace(e.StatusText); t != "" && t != "Unknown Error" {
		return t
	}
	return fallbackMessage
}

func messageFromBody(body []byte) string {
	b := bytes.TrimSpace(body)
	if len(b) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		// 不是 JSON，按纯文本用
		return string(b)
	}
	return messageFromValue(v)
}

func messageFromValue(v any) string {
	switch x := v.(type) {
	case string:
		// 字符串负载可能本身又是一段 JSON
		var inner any
		if err := json.Unmarshal([]byte(x), &inner); err == nil {
			if m := messageFromValue(inner); m != "" {
				return m
			}
		}
		return x
	case map[string]any:
		for _, k := range []string{"message", "error", "description"} {
			switch f := x[k].(type) {
			case string:
				if f != "" {
					return f
				}
			case map[string]any:
				if m := messageFromValue(f); m != "" {
					return m
				}
			}
		}
	}
	return ""
}

// MessageOf 把任意错误翻成可展示的文案
func MessageOf(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Message()
	}
	if err != nil {
		return err.Error()
	}
	return fallbackMessage
}
