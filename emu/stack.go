package emu

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// Stack is the bounded CHIP-8 call stack. Push and pop report overflow and
// underflow as errors instead of corrupting state; the emulator treats both
// as fatal faults.
type Stack struct {
	frames [StackDepth]uint16
	sp     int
}

// Push saves a return address. It fails with ErrStackOverflow when the stack
// is at capacity.
func (s *Stack) Push(addr uint16) error {
	if s.sp >= StackDepth {
		return ErrStackOverflow
	}
	s.frames[s.sp] = addr
	s.sp++
	return nil
}

// Pop removes and returns the most recently saved return address. It fails
// with ErrStackUnderflow when the stack is empty.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.frames[s.sp], nil
}

// Depth returns the number of saved return addresses.
func (s *Stack) Depth() int {
	return s.sp
}

// Reset discards all saved return addresses.
func (s *Stack) Reset() {
	s.sp = 0
}
