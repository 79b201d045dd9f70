package types

// Row is one semi-structured dataset record: field name to arbitrary
// JSON-decoded value. A nil map behaves like an empty record.
type Row map[string]any
