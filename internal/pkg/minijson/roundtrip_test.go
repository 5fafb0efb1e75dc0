package minijson

import (
	"reflect"
	"testing"

	jsonpkg "zonelight/refactor/internal/pkg/json"
)

func sampleTree() map[string]any {
	return map[string]any{
		"zone":  int64(3),
		"arena": "B",
		"ratio": 0.5,
		"big":   float64(1e21),
		"whole": float64(2),
		"neg":   int64(-17),
		"flags": []any{true, false, nil},
		"text":  "tab\there \"quoted\" back\\slash\r\nff\f/ü",
		"empty": map[string]any{},
		"list":  []any{},
		"nested": map[string]any{
			"b": []any{int64(1), int64(2), map[string]any{"c": true}},
			"d": []any{[]any{"x"}, map[string]any{"e": nil}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	v := sampleTree()
	text, err := Dumps(v)
	if err != nil {
		t.Fatalf("Dumps error: %v", err)
	}
	got, err := Loads(text)
	if err != nil {
		t.Fatalf("Loads(%s) error: %v", text, err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("round trip mismatch:\n got  %#v\n want %#v", got, v)
	}

	again, err := Dumps(got)
	if err != nil {
		t.Fatalf("second Dumps error: %v", err)
	}
	if again != text {
		t.Fatalf("re-encoding changed output:\n%s\n%s", text, again)
	}
}

func TestNestedReencode(t *testing.T) {
	src := `{"a": {"b": [1, 2, {"c": true}]}}`
	v := mustLoads(t, src)
	if got := mustDumps(t, v); got != src {
		t.Fatalf("got %s want %s", got, src)
	}
}

func TestDumpsOutputIsValidJSON(t *testing.T) {
	text := mustDumps(t, sampleTree())
	if !jsonpkg.Valid([]byte(text)) {
		t.Fatalf("sonic rejected output: %s", text)
	}
}

// normalizeNumbers maps every number to float64 so trees decoded by
// different codecs can be compared structurally.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, vv := range x {
			out[k] = normalizeNumbers(vv)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, vv := range x {
			out[i] = normalizeNumbers(vv)
		}
		return out
	case int64:
		return float64(x)
	}
	return v
}

func TestLoadsAgreesWithSonic(t *testing.T) {
	docs := []string{
		`{"zone": 2, "arena": "A"}`,
		`{"a": {"b": [1, 2, {"c": true}]}, "n": null, "f": false}`,
		`{"s": "line1\nline2 \"q\" \\ \/ \t\r\f"}`,
		`{"x": -1.25e3, "y": 0.001, "z": 1E2, "w": 0}`,
		`{ "sp" : [ 1 , [ ] , { } ] , "名": "値" }`,
	}
	for _, doc := range docs {
		got := mustLoads(t, doc)

		var want map[string]any
		if err := jsonpkg.UnmarshalString(doc, &want); err != nil {
			t.Fatalf("sonic Unmarshal(%s) error: %v", doc, err)
		}
		if !reflect.DeepEqual(normalizeNumbers(got), normalizeNumbers(want)) {
			t.Fatalf("decoders disagree on %s:\n minijson %#v\n sonic    %#v", doc, got, want)
		}
	}
}
