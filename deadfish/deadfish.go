package deadfish

// Command runes understood by the interpreter.
const (
	Inc    = 'i'
	Dec    = 'd'
	Square = 's'
	Output = 'o'
)

// Machine is a Deadfish accumulator plus the values it has output so far.
// The zero value is ready to use.
type Machine struct {
	acc int
	out []int
}

// Exec applies a single command and reports whether r was a known command.
func (m *Machine) Exec(r rune) bool {
	switch r {
	case Inc:
		m.acc++
	case Dec:
		m.acc--
	case Square:
		m.acc *= m.acc
	case Output:
		m.out = append(m.out, m.acc)
	default:
		return false
	}

	return true
}

// Run executes every rune of code in order.
func (m *Machine) Run(code string) {
	for _, r := range code {
		m.Exec(r)
	}
}

// Value returns the current accumulator.
func (m *Machine) Value() int {
	return m.acc
}

// Output returns a copy of the values emitted so far, never nil.
func (m *Machine) Output() []int {
	return append(make([]int, 0, len(m.out)), m.out...)
}

// Reset clears the accumulator and the output.
func (m *Machine) Reset() {
	m.acc = 0
	m.out = m.out[:0]
}

// Parse runs code on a fresh Machine and returns its output.
func Parse(code string) []int {
	var m Machine
	m.Run(code)

	return m.Output()
}
