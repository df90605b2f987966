package osc

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		address string
		args    []any
	}{
		{"no args", "/song/start_playing", nil},
		{"int", "/track/get/name", []any{int32(3)}},
		{"float", "/song/set/tempo", []any{float32(120.5)}},
		{"string", "/track/set/name", []any{int32(0), "Lead Synth"}},
		{"bool true", "/clip/add/notes", []any{int32(60), Bool(true)}},
		{"bool false", "/clip/add/notes", []any{int32(60), Bool(false)}},
		{"blob", "/device/get/parameters", []any{Blob([]byte{1, 2, 3, 4, 5})}},
		{"mixed flat notes", "/clip/add/notes", []any{
			int32(0), int32(0),
			int32(60), float32(0.0), float32(1.0), int32(100), Bool(false),
			int32(64), float32(1.0), float32(1.0), int32(100), Bool(false),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(tc.address, tc.args)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if len(encoded)%4 != 0 {
				t.Fatalf("encoded length %d not 4-byte aligned", len(encoded))
			}

			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			msg, ok := decoded.(*Message)
			if !ok {
				t.Fatalf("expected *Message, got %T", decoded)
			}
			if msg.Address != tc.address {
				t.Errorf("address: got %q, want %q", msg.Address, tc.address)
			}

			want := tc.args
			if want == nil {
				want = []any{}
			}
			if len(msg.Args) != len(want) {
				t.Fatalf("arg count: got %d, want %d", len(msg.Args), len(want))
			}
			for i := range want {
				if !reflect.DeepEqual(normalizeArg(msg.Args[i]), normalizeArg(want[i])) {
					t.Errorf("arg %d: got %#v, want %#v", i, msg.Args[i], want[i])
				}
			}
		})
	}
}

// normalizeArg collapses the int/float aliases Encode accepts down to the
// wire types Decode always returns, so round-trip comparisons are exact.
func normalizeArg(a any) any {
	switch v := a.(type) {
	case int:
		return int32(v)
	case float64:
		return float32(v)
	case bool:
		return Bool(v)
	case []byte:
		return Blob(v)
	default:
		return a
	}
}

func TestEncodeBadArgument(t *testing.T) {
	_, err := Encode("/song/get/tempo", []any{struct{}{}})
	if err == nil {
		t.Fatal("expected error for unsupported argument type")
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":                      {},
		"unterminated address":       []byte{'/', 'a'},
		"missing comma":              append(padString("/a"), padString("x")...),
		"truncated int":              append(padString("/a"), append(padString(",i"), 0, 0)...),
		"unknown tag":                append(padString("/a"), padString(",z")...),
		"non-zero address padding":   {'/', 'a', 0, 'x'},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(data); err == nil {
				t.Fatalf("expected error decoding %q", name)
			}
		})
	}
}

func padString(s string) []byte {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

func TestDecodeBundle(t *testing.T) {
	msg, err := Encode("/test", []any{int32(1)})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var buf []byte
	buf = append(buf, padString("#bundle")...)
	tt := make([]byte, 8)
	buf = append(buf, tt...)
	size := make([]byte, 4)
	size[3] = byte(len(msg))
	buf = append(buf, size...)
	buf = append(buf, msg...)

	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode bundle: %v", err)
	}
	bundle, ok := decoded.(*Bundle)
	if !ok {
		t.Fatalf("expected *Bundle, got %T", decoded)
	}
	if len(bundle.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(bundle.Elements))
	}
	elemMsg, ok := bundle.Elements[0].(*Message)
	if !ok {
		t.Fatalf("expected nested *Message, got %T", bundle.Elements[0])
	}
	if elemMsg.Address != "/test" {
		t.Errorf("nested address: got %q", elemMsg.Address)
	}
}

func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	f.Add("/song/set/tempo", int32(120), "lead", true)
	f.Fuzz(func(t *testing.T, addr string, i int32, s string, b bool) {
		if addr == "" || addr[0] != '/' {
			t.Skip()
		}
		args := []any{i, s, Bool(b)}
		encoded, err := Encode(addr, args)
		if err != nil {
			t.Skip()
		}
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(...)) failed: %v", err)
		}
		msg, ok := decoded.(*Message)
		if !ok {
			t.Fatalf("expected *Message, got %T", decoded)
		}
		if msg.Address != addr {
			t.Fatalf("address mismatch: got %q, want %q", msg.Address, addr)
		}
	})
}
