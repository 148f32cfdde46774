// Copyright (C) 2024 M. Felian. All Rights Reserved.

package jval_test

import (
	"errors"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/mfelian/jval"
)

func TestAs(t *testing.T) {
	v := mustParse(t, `{"name": "aloysius", "tags": [1, true], "n": 3.5, "ok": false, "gone": null}`)

	obj, err := jval.As[jval.Object](v)
	if err != nil {
		t.Fatalf("As[Object]: unexpected error: %v", err)
	}
	if s, err := jval.As[jval.String](obj["name"]); err != nil {
		t.Errorf("As[String]: unexpected error: %v", err)
	} else if s != "aloysius" {
		t.Errorf("As[String]: got %q, want %q", s, "aloysius")
	}
	if n, err := jval.As[jval.Number](obj["n"]); err != nil {
		t.Errorf("As[Number]: unexpected error: %v", err)
	} else if n != 3.5 {
		t.Errorf("As[Number]: got %v, want 3.5", n)
	}
	if b, err := jval.As[jval.Bool](obj["ok"]); err != nil {
		t.Errorf("As[Bool]: unexpected error: %v", err)
	} else if b != jval.False {
		t.Errorf("As[Bool]: got %v, want false", b)
	}
	if a, err := jval.As[jval.Array](obj["tags"]); err != nil {
		t.Errorf("As[Array]: unexpected error: %v", err)
	} else if len(a) != 2 {
		t.Errorf("As[Array]: got %d elements, want 2", len(a))
	}
	if _, err := jval.As[jval.Null](obj["gone"]); err != nil {
		t.Errorf("As[Null]: unexpected error: %v", err)
	}

	_, err = jval.As[jval.Array](v)
	if err == nil {
		t.Fatal("As[Array]: got nil, want error")
	}
	var te *jval.TypeError
	if !errors.As(err, &te) {
		t.Fatalf("As[Array]: error %v is not a *TypeError", err)
	}
	t.Logf("Got expected error: %v", err)
}

func TestMust(t *testing.T) {
	obj := jval.Must[jval.Object](mustParse(t, `{"a": null}`))
	if _, ok := obj["a"].(jval.Null); !ok {
		t.Errorf(`obj["a"]: got %T, want Null`, obj["a"])
	}
	mtest.MustPanic(t, func() { jval.Must[jval.Array](obj) })
	mtest.MustPanic(t, func() { jval.Must[jval.Number](jval.String("3")) })
}

func TestToValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  jval.Value
	}{
		{"Nil", nil, jval.Null{}},
		{"Bool", true, jval.True},
		{"String", "ok go", jval.String("ok go")},
		{"Int", 25, jval.Number(25)},
		{"Int64", int64(-3), jval.Number(-3)},
		{"Uint", uint16(9), jval.Number(9)},
		{"Float", 0.5, jval.Number(0.5)},
		{"Value", jval.False, jval.False},
		{"Slice", []any{1, "a", nil}, jval.Array{jval.Number(1), jval.String("a"), jval.Null{}}},
		{"Map", map[string]any{"x": false}, jval.Object{"x": jval.False}},
		{"Deep", map[string]any{"y": []any{2.5}}, jval.Object{"y": jval.Array{jval.Number(2.5)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := jval.ToValue(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ToValue(%+v): (-want, +got)\n%s", tc.input, diff)
			}
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		mtest.MustPanic(t, func() { jval.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { jval.ToValue(func() {}) })
		mtest.MustPanic(t, func() { jval.ToValue(make(chan struct{})) })
	})
}
