package filesystem

// PlainFile content is an ordered sequence of words, replaced wholesale on write
type PlainFile struct {
	words []string
}

// Size is the total word length plus one separator between adjacent words
func (f *PlainFile) Size() int {
	if len(f.words) == 0 {
		return 0
	}
	size := len(f.words) - 1
	for _, w := range f.words {
		size += len(w)
	}
	return size
}

// Read returns a copy of the current words
func (f *PlainFile) Read() []string {
	out := make([]string, len(f.words))
	copy(out, f.words)
	return out
}

// Write replaces the content with a copy of words
func (f *PlainFile) Write(words []string) {
	next := make([]string, len(words))
	copy(next, words)
	f.words = next
}
