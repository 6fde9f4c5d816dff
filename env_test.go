package lemons

import (
	"reflect"
	"testing"
)

func TestEnv(t *testing.T) {
	env := NewEnv()
	if env.Len() != 0 {
		t.Fatalf("want empty env but got %d bindings", env.Len())
	}
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("x should not be bound")
	}

	first, err := Parse("1")
	if err != nil {
		t.Fatal(err)
	}
	env.Set("x", first)
	stored, ok := env.Lookup("x")
	if !ok {
		t.Fatal("x should be bound")
	}
	if stored == first {
		t.Fatal("Set should store a copy")
	}

	second, err := Parse("2")
	if err != nil {
		t.Fatal(err)
	}
	env.Set("x", second)
	replaced, _ := env.Lookup("x")
	if replaced == stored || replaced.Contents != "2" {
		t.Fatalf("want new binding but got %v", replaced)
	}

	env.Set("b", second)
	env.Set("a", second)
	if got, want := env.Names(), []string{"a", "b", "x"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v but got %v", want, got)
	}

	env.Close()
	if env.Len() != 0 {
		t.Fatalf("want empty env after Close but got %d bindings", env.Len())
	}
}

func TestSyntaxErrorLeavesEnv(t *testing.T) {
	env := NewEnv()
	eval(t, env, "x = 1")
	if _, err := Parse("x = 2 +"); err == nil {
		t.Fatal("want syntax error")
	}
	if got := eval(t, env, "x"); got.String() != "1" {
		t.Fatalf("want 1 but got %v", got)
	}
	if env.Len() != 1 {
		t.Fatalf("want 1 binding but got %d", env.Len())
	}
}
