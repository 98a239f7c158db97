package charvocab

import (
	"errors"
	"reflect"
	"testing"
)

func TestVocabExample(t *testing.T) {
	v, err := BuildNames([]string{"Anna", "Bo"})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"<s>": 0,
		"a":   1,
		"b":   2,
		"n":   3,
		"o":   4,
		"<e>": 5,
	}
	if got := v.C2I(); !reflect.DeepEqual(got, want) {
		t.Fatalf("c2i = %v, want %v", got, want)
	}
	if v.Start() != 0 || v.End() != 5 {
		t.Fatalf("start=%d end=%d", v.Start(), v.End())
	}
}

func TestVocabBijection(t *testing.T) {
	names := []string{"Matti", "Jukka-Pekka", "Äijö", "", "Åke", "matti"}
	v, err := BuildNames(names)
	if err != nil {
		t.Fatal(err)
	}
	c2i, i2c := v.C2I(), v.I2C()
	if len(c2i) != len(i2c) {
		t.Fatalf("len(c2i)=%d len(i2c)=%d", len(c2i), len(i2c))
	}
	for tk, id := range c2i {
		if i2c[id] != tk {
			t.Errorf("i2c[c2i[%q]] = %q", tk, i2c[id])
		}
	}
	if c2i[StartToken] != 0 {
		t.Errorf("start = %d", c2i[StartToken])
	}
	if c2i[EndToken] != len(c2i)-1 {
		t.Errorf("end = %d, want %d", c2i[EndToken], len(c2i)-1)
	}

	seen := make(map[string]bool)
	for _, name := range Normalize(names, false) {
		for _, ch := range name {
			seen[string(ch)] = true
			if _, ok := v.ID(string(ch)); !ok {
				t.Errorf("missing %q", ch)
			}
		}
	}
	for tk := range c2i {
		if tk == StartToken || tk == EndToken {
			continue
		}
		if !seen[tk] {
			t.Errorf("extraneous %q", tk)
		}
	}
}

func TestVocabDeterministic(t *testing.T) {
	names := []string{"Ville", "Eino", "Onni", "Väinö", "Leo"}
	a, err := BuildNames(names)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildNames(names)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.C2I(), b.C2I()) || !reflect.DeepEqual(a.I2C(), b.I2C()) {
		t.Fatal("vocab differs between runs")
	}
}

func TestVocabEmpty(t *testing.T) {
	v, err := BuildNames(nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 2 || v.Start() != 0 || v.End() != 1 {
		t.Fatalf("len=%d start=%d end=%d", v.Len(), v.Start(), v.End())
	}
}

func TestVocabSentinelCollision(t *testing.T) {
	if _, err := BuildNames([]string{"a-b"}, WithSentinels("-", "<e>")); !errors.Is(err, ErrTokenCollision) {
		t.Fatalf("err = %v, want ErrTokenCollision", err)
	}
	if _, err := BuildNames([]string{"ab"}, WithSentinels("#", "#")); !errors.Is(err, ErrTokenCollision) {
		t.Fatalf("err = %v, want ErrTokenCollision", err)
	}
}

func TestInvertCollision(t *testing.T) {
	_, err := invert(map[string]int{"a": 1, "b": 1})
	if !errors.Is(err, ErrIndexCollision) {
		t.Fatalf("err = %v, want ErrIndexCollision", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	v, err := BuildNames([]string{"Anna", "Bo"})
	if err != nil {
		t.Fatal(err)
	}
	ids, err := v.Encode("boa")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2, 4, 1, 5}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("Encode = %v, want %v", ids, want)
	}
	name, err := v.Decode(ids)
	if err != nil {
		t.Fatal(err)
	}
	if name != "boa" {
		t.Fatalf("Decode = %q", name)
	}
	if _, err := v.Encode("x"); !errors.Is(err, ErrUnknownRune) {
		t.Fatalf("err = %v, want ErrUnknownRune", err)
	}
	if _, err := v.Decode([]int{0, 9}); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("err = %v, want ErrUnknownID", err)
	}
}

func TestTokens(t *testing.T) {
	v, err := BuildNames([]string{"Bo"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"<s>", "b", "o", "<e>"}
	if got := v.Tokens(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	if tk, ok := v.Token(2); !ok || tk != "o" {
		t.Fatalf("Token(2) = %q, %v", tk, ok)
	}
	if _, ok := v.Token(4); ok {
		t.Fatal("Token(4) should not exist")
	}
}
