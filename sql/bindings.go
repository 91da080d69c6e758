package sql

// BindingRegistry assigns each column of a query a stable zero-based
// ordinal. The binder runs it once over the FROM relations, left to right,
// binding columns in declaration order within each relation; after that the
// registry is read-only and rendering the same plan any number of times
// yields identical ordinals.
//
// The registry is passed explicitly through compilation. It is not safe for
// concurrent binding, but concurrent lookups after binding are fine.
type BindingRegistry struct {
	ordinals map[string]int
	refs     []ColumnRef
}

// NewBindingRegistry creates an empty binding registry.
func NewBindingRegistry() *BindingRegistry {
	return &BindingRegistry{ordinals: make(map[string]int)}
}

// Bind assigns the next dense ordinal to the given column and returns its
// reference. Binding the same (table, name) pair again returns the original
// assignment.
func (r *BindingRegistry) Bind(table, name string) ColumnRef {
	key := table + "." + name
	if ord, ok := r.ordinals[key]; ok {
		return r.refs[ord]
	}

	ref := ColumnRef{Table: table, Name: name, Ordinal: len(r.refs)}
	r.ordinals[key] = ref.Ordinal
	r.refs = append(r.refs, ref)
	return ref
}

// BindRelation binds every column of the given relation in declaration
// order and returns their references.
func (r *BindingRegistry) BindRelation(table string, schema Schema) []ColumnRef {
	refs := make([]ColumnRef, len(schema))
	for i, col := range schema {
		refs[i] = r.Bind(table, col.Name)
	}
	return refs
}

// Lookup returns the reference bound for the given column, or
// ErrColumnNotBound when the binder never saw it.
func (r *BindingRegistry) Lookup(table, name string) (ColumnRef, error) {
	ord, ok := r.ordinals[table+"."+name]
	if !ok {
		return ColumnRef{}, ErrColumnNotBound.New(table, name)
	}
	return r.refs[ord], nil
}

// Columns returns all bound references in ordinal order.
func (r *BindingRegistry) Columns() []ColumnRef {
	refs := make([]ColumnRef, len(r.refs))
	copy(refs, r.refs)
	return refs
}
