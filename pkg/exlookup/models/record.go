package models

// Record is one fully rendered output row: column name to string value.
type Record map[string]string
