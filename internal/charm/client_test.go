// ABOUTME: Tests for the Charm KV client helpers.
// ABOUTME: Key ordering must replay the sequence-keyed result log in insertion order.
package charm

import (
	"fmt"
	"testing"
)

func TestSortKeysOrdersSequenceKeys(t *testing.T) {
	keys := [][]byte{
		[]byte(fmt.Sprintf("result:%012d", 10)),
		[]byte(fmt.Sprintf("result:%012d", 2)),
		[]byte(fmt.Sprintf("result:%012d", 1)),
		[]byte(fmt.Sprintf("result:%012d", 100)),
	}

	sortKeys(keys)

	want := []uint64{1, 2, 10, 100}
	for i, seq := range want {
		expected := fmt.Sprintf("result:%012d", seq)
		if string(keys[i]) != expected {
			t.Errorf("keys[%d] = %s, want %s", i, keys[i], expected)
		}
	}
}

func TestSortKeysEmptyAndSingle(t *testing.T) {
	sortKeys(nil)

	keys := [][]byte{[]byte("profile")}
	sortKeys(keys)
	if string(keys[0]) != "profile" {
		t.Errorf("single key changed: %s", keys[0])
	}
}
