// file: internal/cache/cache_test.go
// version: 1.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7e

package cache

import (
	"sync"
	"testing"
)

func TestMetadataKeyFolding(t *testing.T) {
	tests := []struct {
		name          string
		titleA, authA string
		titleB, authB string
		same          bool
	}{
		{"case insensitive", "Dune", "Frank Herbert", "DUNE", "frank herbert", true},
		{"diacritics folded", "Thérèse Raquin", "Émile Zola", "Therese Raquin", "Emile Zola", true},
		{"whitespace collapsed", "  Dune ", "Frank  Herbert", "Dune", "Frank Herbert", true},
		{"different books differ", "Dune", "Frank Herbert", "Dune Messiah", "Frank Herbert", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MetadataKey(tt.titleA, tt.authA)
			b := MetadataKey(tt.titleB, tt.authB)
			if (a == b) != tt.same {
				t.Errorf("MetadataKey equality = %v, want %v (%q vs %q)", a == b, tt.same, a, b)
			}
		})
	}
}

func TestCoverKey(t *testing.T) {
	if CoverKey("abc") == CoverKey("def") {
		t.Error("different group IDs must yield different cover keys")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	if _, ok, err := store.Get("missing"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := store.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok, err := store.Get("k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("Get = (%q, %v, %v)", got, ok, err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key survived Delete")
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	store.Set("a", []byte("1"))
	store.Set("b", []byte("2"))
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d after Clear", store.Len())
	}
}

// Read-your-writes under concurrent workers: a Set that has returned must
// be observed by any subsequent Get, from any goroutine.
func TestMemoryStoreConcurrentReadYourWrites(t *testing.T) {
	store := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n byte) {
			defer wg.Done()
			key := string(rune('a' + n))
			val := []byte{n}
			if err := store.Set(key, val); err != nil {
				t.Errorf("Set failed: %v", err)
				return
			}
			got, ok, err := store.Get(key)
			if err != nil || !ok || got[0] != n {
				t.Errorf("read-your-writes violated for %q: (%v, %v, %v)", key, got, ok, err)
			}
		}(byte(i))
	}
	wg.Wait()
	if store.Len() != 16 {
		t.Errorf("Len = %d, want 16", store.Len())
	}
}

func TestJSONHelpers(t *testing.T) {
	store := NewMemoryStore()
	type payload struct {
		Title string `json:"title"`
		Year  string `json:"year"`
	}
	in := payload{Title: "Dune", Year: "1965"}
	if err := SetJSON(store, "meta:test", &in); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}
	var out payload
	ok, err := GetJSON(store, "meta:test", &out)
	if err != nil || !ok {
		t.Fatalf("GetJSON = (%v, %v)", ok, err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v", out)
	}

	store.Set("bad", []byte("{not json"))
	if _, err := GetJSON(store, "bad", &out); err == nil {
		t.Error("corrupt value must error")
	}
}
