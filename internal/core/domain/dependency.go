package domain

// Dependency is the "any nested shape of dependencies" parameter described
// in spec.md §9's design notes, resolved as a small tagged-variant
// interface instead of a compile-time overload: a caller may pass a single
// path, a flat list, or an arbitrarily nested bag of either, and every
// consumer (RebuildDecider, the compile/archive/link driver) flattens it
// the same way.
type Dependency interface {
	// Paths returns every leaf path reachable from this Dependency, in
	// depth-first, left-to-right order.
	Paths() []string
}

// PathDependency is a single leaf path.
type PathDependency string

// Paths implements Dependency.
func (p PathDependency) Paths() []string {
	if p == "" {
		return nil
	}
	return []string{string(p)}
}

// ListDependency is an ordered bag of nested Dependency values.
type ListDependency []Dependency

// Paths implements Dependency, flattening recursively.
func (l ListDependency) Paths() []string {
	var out []string
	for _, d := range l {
		if d == nil {
			continue
		}
		out = append(out, d.Paths()...)
	}
	return out
}

// Dep wraps a single path as a Dependency.
func Dep(path string) Dependency {
	return PathDependency(path)
}

// DepStrings wraps a flat slice of paths as a Dependency.
func DepStrings(paths []string) Dependency {
	items := make(ListDependency, 0, len(paths))
	for _, p := range paths {
		items = append(items, PathDependency(p))
	}
	return items
}

// Deps bundles the given Dependency values into one nested Dependency.
func Deps(items ...Dependency) Dependency {
	return ListDependency(items)
}
