package distaff_test

import (
	"encoding/json"
	"strings"
	"testing"

	distaff "github.com/reoring/distaff"
)

func TestDecodeJSON_NumbersStayPrecise(t *testing.T) {
	v, err := distaff.DecodeJSON([]byte(`{"big": 9007199254740993, "s": "x"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	n, ok := m["big"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", m["big"])
	}
	i, err := n.Int64()
	if err != nil || i != 9007199254740993 {
		t.Fatalf("precision lost: %v %v", i, err)
	}
}

func TestDecodeJSONReader(t *testing.T) {
	v, err := distaff.DecodeJSONReader(strings.NewReader(`[1, null, true]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	seq := v.([]any)
	if len(seq) != 3 || seq[1] != nil || seq[2] != true {
		t.Fatalf("unexpected value: %v", seq)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := distaff.DecodeJSON([]byte(`{"x":`))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestDecodeYAML(t *testing.T) {
	v, err := distaff.DecodeYAML([]byte("id: 7\ntags:\n  - a\n  - b\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	if m["id"] != 7 {
		t.Fatalf("expected int 7, got %v (%T)", m["id"], m["id"])
	}
	if len(m["tags"].([]any)) != 2 {
		t.Fatalf("unexpected tags: %v", m["tags"])
	}
}
