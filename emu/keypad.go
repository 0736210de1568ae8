package emu

import "fmt"

// NumKeys is the number of keys on the CHIP-8 keypad.
const NumKeys = 16

// Keypad holds the state of the 16-key input device. It is mutated only by
// host input events and read by the core.
type Keypad struct {
	keys [NumKeys]bool
}

// Set records a key press or release. The index must be 0-15.
func (k *Keypad) Set(index uint8, pressed bool) error {
	if index >= NumKeys {
		return fmt.Errorf("%w: %d", ErrKeyIndex, index)
	}
	k.keys[index] = pressed
	return nil
}

// Down reports whether the key is currently pressed. Out-of-range indexes
// report false.
func (k *Keypad) Down(index uint8) bool {
	return index < NumKeys && k.keys[index]
}

// FirstDown scans the keypad in index order and returns the lowest pressed
// key, if any.
func (k *Keypad) FirstDown() (uint8, bool) {
	for i := uint8(0); i < NumKeys; i++ {
		if k.keys[i] {
			return i, true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.keys = [NumKeys]bool{}
}
