// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// EnrichmentBatch is the predicate function for enrichmentbatch builders.
type EnrichmentBatch func(*sql.Selector)
