package dashboard

import (
	"testing"

	"go.viam.com/test"
)

func TestMemStoreKinds(t *testing.T) {
	store := NewMemStore()

	_, ok := store.GetNumber("missing")
	test.That(t, ok, test.ShouldBeFalse)

	store.SetNumber("speed", 0.5)
	v, ok := store.GetNumber("speed")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldEqual, 0.5)

	store.SetString("auton", "two-ball")
	s, ok := store.GetString("auton")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, s, test.ShouldEqual, "two-ball")

	store.SetBool("enabled", true)
	b, ok := store.GetBool("enabled")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, b, test.ShouldBeTrue)

	// A key holds one value; a kind change replaces it.
	store.SetString("speed", "fast")
	_, ok = store.GetNumber("speed")
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, store.Keys(), test.ShouldResemble, []string{"auton", "enabled", "speed"})
}

func TestNumberHandle(t *testing.T) {
	store := NewMemStore()
	n := NewNumber(store, "drive/smoothing", 8)

	// Declaring the handle writes the default through.
	v, ok := store.GetNumber("drive/smoothing")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldEqual, 8.0)
	test.That(t, n.Get(), test.ShouldEqual, 8.0)
	test.That(t, n.Default(), test.ShouldEqual, 8.0)
	test.That(t, n.Key(), test.ShouldEqual, "drive/smoothing")

	// Operator-side edits are visible through the handle.
	store.SetNumber("drive/smoothing", 12)
	test.That(t, n.Get(), test.ShouldEqual, 12.0)

	n.Set(3)
	test.That(t, n.Get(), test.ShouldEqual, 3.0)

	n.Reset()
	test.That(t, n.Get(), test.ShouldEqual, 8.0)

	// A kind clash falls back to the default.
	store.SetString("drive/smoothing", "oops")
	test.That(t, n.Get(), test.ShouldEqual, 8.0)
}

func TestStringAndBooleanHandles(t *testing.T) {
	store := NewMemStore()

	s := NewString(store, "auton", "two-ball")
	test.That(t, s.Get(), test.ShouldEqual, "two-ball")
	s.Set("three-ball")
	test.That(t, s.Get(), test.ShouldEqual, "three-ball")
	s.Reset()
	test.That(t, s.Get(), test.ShouldEqual, "two-ball")

	b := NewBoolean(store, "shooter/enabled", false)
	test.That(t, b.Get(), test.ShouldBeFalse)
	b.Set(true)
	test.That(t, b.Get(), test.ShouldBeTrue)
	b.Reset()
	test.That(t, b.Get(), test.ShouldBeFalse)
	test.That(t, b.Default(), test.ShouldBeFalse)
	test.That(t, b.Key(), test.ShouldEqual, "shooter/enabled")
}
