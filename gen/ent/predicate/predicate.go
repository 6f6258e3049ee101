// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentField is the predicate function for documentfield builders.
type DocumentField func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)
