package sql

// Column is the definition of a table column.
type Column struct {
	// Name is the name of the column.
	Name string
	// Type is the type of the column.
	Type Type
	// Nullable is true when the column can contain NULL.
	Nullable bool
}

// Schema is the definition of a table.
type Schema []*Column

// ColumnRef is a column with its stable per-query ordinal. Ordinals are
// dense, start at zero and never change for the lifetime of a compiled
// query, so the `#N` annotations in rendered plans are reproducible.
type ColumnRef struct {
	// Table is the qualifying relation name, possibly an alias. May be empty
	// for derived columns.
	Table string
	// Name is the column name.
	Name string
	// Ordinal is the zero-based position assigned by the binding registry.
	Ordinal int
}
