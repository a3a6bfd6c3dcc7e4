// Package intern implements the string interner (component C2): an
// append-only arena that deduplicates identifier and spelling strings
// into stable, long-lived references.
//
// Grounded on spec.md §4.2/§9: the teacher (confucianzuoyuan-zcc) has no
// interner at all — identifiers are just byte-slice windows into the
// whole-file buffer it keeps resident — so this package is new, built to
// the arena-style, reference-stable contract the spec names explicitly.
package intern

// Ref is a stable reference to an interned byte string. It never
// invalidates and never moves once returned by Intern.
type Ref uint32

// Interner deduplicates byte strings. It is not safe for concurrent use;
// per spec.md §5, a lexer (and its interner) belongs to one goroutine.
type Interner struct {
	index   map[string]Ref
	strings []string
}

// New returns a fresh, empty interner. Construct one per compilation
// (spec.md §9 "Concurrency" note), never a process-wide global.
func New() *Interner {
	return &Interner{index: make(map[string]Ref, 256)}
}

// Intern returns the stable reference for s, allocating a new entry only
// if this exact content hasn't been seen before.
func (in *Interner) Intern(s string) Ref {
	if ref, ok := in.index[s]; ok {
		return ref
	}
	ref := Ref(len(in.strings))
	// Copy s so callers may pass a slice backed by a buffer they will
	// mutate or reuse (e.g. a scratch decode buffer).
	owned := string(append([]byte(nil), s...))
	in.strings = append(in.strings, owned)
	in.index[owned] = ref
	return ref
}

// InternBytes is Intern for a []byte: b is converted to a string and
// passed to Intern, which keeps its own copy on a miss, so the caller
// may reuse b afterward.
func (in *Interner) InternBytes(b []byte) Ref {
	return in.Intern(string(b))
}

// Lookup returns the string content for ref. It panics on an out-of-range
// ref, which indicates a bug in the caller (a ref from a different
// interner, or a corrupted token) rather than a recoverable condition.
func (in *Interner) Lookup(ref Ref) string {
	return in.strings[ref]
}

// Len reports how many distinct strings have been interned.
func (in *Interner) Len() int {
	return len(in.strings)
}
