// Package json is the general-purpose JSON codec for everything outside the
// zone metadata path: log output, HTTP API payloads and test oracles.
package json

import "github.com/bytedance/sonic"

var api = sonic.Config{
	EscapeHTML:  false,
	SortMapKeys: true, // stable output for logs and API responses
	UseInt64:    true,
	CopyString:  true, // 防止解码后的字符串引用原始 JSON 缓冲区
}.Froze()

func Marshal(v any) ([]byte, error) { return api.Marshal(v) }

func Unmarshal(data []byte, v any) error { return api.Unmarshal(data, v) }

func MarshalString(v any) (string, error) { return api.MarshalToString(v) }

func UnmarshalString(data string, v any) error { return api.UnmarshalFromString(data, v) }

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Valid reports whether data is a syntactically valid JSON document.
func Valid(data []byte) bool { return api.Valid(data) }
