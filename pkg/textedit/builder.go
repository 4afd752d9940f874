package textedit

// Builder accumulates edits for a single document.
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	edits []TextEdit
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		edits: make([]TextEdit, 0),
	}
}

// Add appends an edit.
func (b *Builder) Add(edit TextEdit) {
	b.edits = append(b.edits, edit)
}

// Replace adds an edit that replaces bytes [start, end) with text.
func (b *Builder) Replace(start, end int, text string) {
	b.Add(Replace(start, end, text))
}

// Insert adds an edit that inserts text at the given offset.
func (b *Builder) Insert(offset int, text string) {
	b.Add(Insert(offset, text))
}

// Delete adds an edit that deletes bytes [start, end).
func (b *Builder) Delete(start, end int) {
	b.Replace(start, end, "")
}

// Len returns the number of edits added so far.
func (b *Builder) Len() int {
	return len(b.edits)
}

// Build returns a set holding the accumulated edits in insertion order for
// equal start offsets. Later calls to the Builder do not affect the set.
func (b *Builder) Build() EditSet {
	return FromTextEdits(b.edits)
}
