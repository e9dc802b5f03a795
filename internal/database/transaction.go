package database

import (
	"context"
	"fmt"
	"strings"
)

// TxBuilder accumulates statements for a single atomic transaction,
// namespacing variables so statements from different call sites cannot
// collide ($team_id from two Add calls becomes $v1_team_id and $v2_team_id).
type TxBuilder struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewTxBuilder creates an empty transaction builder.
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{vars: make(map[string]interface{})}
}

// Add appends a statement, rewriting its variable references to namespaced
// names and merging the values into the shared variable map.
func (tb *TxBuilder) Add(query string, vars map[string]interface{}) {
	rewritten := query
	for name, value := range vars {
		tb.varCounter++
		namespaced := fmt.Sprintf("v%d_%s", tb.varCounter, name)
		rewritten = strings.ReplaceAll(rewritten, "$"+name, "$"+namespaced)
		tb.vars[namespaced] = value
	}
	tb.statements = append(tb.statements, rewritten)
}

// Build wraps the accumulated statements in a transaction block.
func (tb *TxBuilder) Build() (string, map[string]interface{}) {
	if len(tb.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), tb.vars
}

// AtomicBatch is the fluent form of TxBuilder used by the services: queue
// 2-5 statements that must land together, then Execute.
type AtomicBatch struct {
	builder *TxBuilder
}

// NewAtomicBatch creates an empty batch.
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{builder: NewTxBuilder()}
}

// Add queues a statement and returns the batch for chaining.
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.builder.Add(query, vars)
	return ab
}

// Len returns the number of queued statements.
func (ab *AtomicBatch) Len() int {
	return len(ab.builder.statements)
}

// Execute runs the batch as one transaction. All statements succeed or the
// store applies none of them.
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	query, vars := ab.builder.Build()
	if query == "" {
		return nil
	}
	return db.Execute(ctx, query, vars)
}
