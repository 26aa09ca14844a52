package sequence

import (
	"slices"
	"testing"
)

func TestStoreAdd(t *testing.T) {
	store := NewStore[rune]()
	want := NewFromValues(testValues)
	store.Add("s1", want)
	got, ok := store.m["s1"]
	if !ok {
		t.Fatalf("key should exist in store")
	}
	if got == want {
		t.Fatalf("pointer values should not be equal")
	}
	if !got.Equal(want) {
		t.Fatalf("\ngot  %v\nwant %v", got.data, want.data)
	}
}

func TestStoreGet(t *testing.T) {
	store := NewStore[rune]()
	want := NewFromValues(testValues)
	store.Add("s1", want)
	got, ok := store.Get("s1")
	if !ok {
		t.Fatalf("got %t, want true", ok)
	}
	if got == store.m["s1"] {
		t.Fatalf("pointer values should not be equal")
	}
	if !got.Equal(want) {
		t.Fatalf("\ngot  %v\nwant %v", got.data, want.data)
	}
	_, ok = store.Get("s2")
	if ok {
		t.Fatalf("got %t, want false", ok)
	}
}

func TestStoreGetIndependence(t *testing.T) {
	store := NewStore[rune]()
	store.Add("s1", NewFromValues(testValues))
	got, _ := store.Get("s1")
	if err := got.SetAt(0, 'X'); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	kept, _ := store.Get("s1")
	if v, _ := kept.At(0); v != 'h' {
		t.Fatalf("mutating a retrieved copy should not change the stored sequence")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore[rune]()
	store.Add("s1", NewFromValues(testValues))
	store.Delete("s1")
	if _, ok := store.m["s1"]; ok {
		t.Fatalf("key should not exist in store")
	}
}

func TestStoreKeys(t *testing.T) {
	store := NewStore[rune]()
	store.Add("k1", New[rune]())
	store.Add("k2", NewFromValues(testValues))
	got := store.Keys()
	slices.Sort(got)
	want := []string{"k1", "k2"}
	if !slices.Equal(got, want) {
		t.Fatalf("\ngot  %v\nwant %v", got, want)
	}
	if store.Len() != 2 {
		t.Fatalf("got %d, want 2", store.Len())
	}
}
