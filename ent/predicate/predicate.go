// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Dag is the predicate function for dag builders.
type Dag func(*sql.Selector)

// DagExecution is the predicate function for dagexecution builders.
type DagExecution func(*sql.Selector)

// StopRequest is the predicate function for stoprequest builders.
type StopRequest func(*sql.Selector)

// SubStep is the predicate function for substep builders.
type SubStep func(*sql.Selector)
