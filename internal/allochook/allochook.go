// Package allochook lets tests make table slot allocation fail.
package allochook

// Fail, if non-nil, is called before a table allocates n slots.
// When it returns true, the allocation fails as if memory were
// exhausted.
var Fail func(n int) bool

// Set installs f as the failure hook and returns a function
// that restores the previous one.
func Set(f func(n int) bool) (restore func()) {
	old := Fail
	Fail = f
	return func() {
		Fail = old
	}
}

// FailNth returns a hook that fails only the nth allocation
// made after it is installed, counting from 1.
func FailNth(n int) func(int) bool {
	calls := 0
	return func(int) bool {
		calls++
		return calls == n
	}
}
