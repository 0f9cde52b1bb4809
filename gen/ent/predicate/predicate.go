// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)
