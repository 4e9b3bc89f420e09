package control

import (
	"slices"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestTableOwnership(t *testing.T) {
	var tbl Table
	slider, inspector := uuid.New(), uuid.New()

	if tbl.IsControlled(KeySizeX) {
		t.Fatal("empty table reports SizeX as controlled")
	}
	if !tbl.CanWrite(KeySizeX, inspector) {
		t.Error("CanWrite() on uncontrolled key = false, want true")
	}

	tbl.Set(KeySizeX, slider)

	if got, ok := tbl.Owner(KeySizeX); !ok || got != slider {
		t.Errorf("Owner(SizeX) = %v, %v, want %v", got, ok, slider)
	}
	if !tbl.IsControlledBy(KeySizeX, slider) {
		t.Error("IsControlledBy(SizeX, slider) = false, want true")
	}
	if tbl.IsControlledBy(KeySizeX, inspector) {
		t.Error("IsControlledBy(SizeX, inspector) = true, want false")
	}
	if tbl.CanWrite(KeySizeX, inspector) {
		t.Error("CanWrite(SizeX, inspector) = true, want false")
	}
	if !tbl.CanWrite(KeySizeX, slider) {
		t.Error("CanWrite(SizeX, slider) = false, want true")
	}

	tbl.Set(KeySizeX, inspector)
	if !tbl.IsControlledBy(KeySizeX, inspector) {
		t.Error("Set() did not replace the owner")
	}

	tbl.Unset(KeySizeX)
	if tbl.IsControlled(KeySizeX) {
		t.Error("Unset() left SizeX controlled")
	}
}

func TestTableSetNilRemoves(t *testing.T) {
	var tbl Table
	tbl.Set(KeyAlpha, uuid.New())
	tbl.Set(KeyAlpha, uuid.Nil)
	if tbl.IsControlled(KeyAlpha) {
		t.Error("Set(key, uuid.Nil) did not remove the key")
	}
}

func TestTableKeysAndRelease(t *testing.T) {
	var tbl Table
	a, b := uuid.New(), uuid.New()
	tbl.SetAll(a, KeySizeY, KeyAlpha, KeyText)
	tbl.Set(KeyIconType, b)

	want := []Key{KeyAlpha, KeyIconType, KeySizeY, KeyText}
	if got := tbl.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if n := tbl.Release(a); n != 3 {
		t.Errorf("Release(a) = %d, want 3", n)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() after Release = %d, want 1", tbl.Len())
	}

	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", tbl.Len())
	}
}

func TestTableConcurrentAccess(t *testing.T) {
	var tbl Table
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.New()
			for j := 0; j < 100; j++ {
				tbl.Set(KeyHandleValue, id)
				tbl.CanWrite(KeyHandleValue, id)
				tbl.Keys()
			}
		}()
	}
	wg.Wait()
	if !tbl.IsControlled(KeyHandleValue) {
		t.Error("HandleValue not controlled after concurrent writes")
	}
}
