package shell

// ArgvBuilder is an append-only argv assembler. Spec.md §4.8: "Assemble
// argv, print, spawn synchronously, collect stdout, enforce a watchdog
// timeout."
type ArgvBuilder struct {
	argv []string
}

// NewArgvBuilder seeds the builder with a command prefix (e.g. a
// configured compiler argv prefix).
func NewArgvBuilder(prefix ...string) *ArgvBuilder {
	b := &ArgvBuilder{}
	b.Append(prefix...)
	return b
}

// Append adds one or more arguments in order.
func (b *ArgvBuilder) Append(args ...string) *ArgvBuilder {
	b.argv = append(b.argv, args...)
	return b
}

// Build returns the assembled argv. The caller must not mutate it.
func (b *ArgvBuilder) Build() []string {
	return b.argv
}
