package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/pixelforge/studio-api/internal/database"
)

// The SurrealDB driver returns rows as maps whose ids and datetimes are
// driver-specific types. These helpers normalize a row into plain JSON
// values and decode it into an entity struct.

// decodeRow converts one raw row into *T via a JSON round trip.
func decodeRow[T any](row interface{}) (*T, error) {
	data, ok := normalizeValue(row).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected row format %T", row)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeRows converts a row slice into []*T.
func decodeRows[T any](rows []interface{}) ([]*T, error) {
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		item, err := decodeRow[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// normalizeValue recursively replaces driver types (record ids, datetimes)
// with their JSON-friendly string forms.
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case models.RecordID:
		return recordIDString(val)
	case *models.RecordID:
		if val == nil {
			return nil
		}
		return recordIDString(*val)
	case models.CustomDateTime:
		return val.Time.Format(time.RFC3339Nano)
	case *models.CustomDateTime:
		if val == nil {
			return nil
		}
		return val.Time.Format(time.RFC3339Nano)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// recordIDString renders a driver record id as "table:id".
func recordIDString(rid models.RecordID) string {
	return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
}

// countFrom extracts the count value from a `SELECT count() ... GROUP ALL`
// row.
func countFrom(row interface{}) (int, error) {
	data, ok := normalizeValue(row).(map[string]interface{})
	if !ok {
		return 0, errors.New("unexpected count row format")
	}
	switch n := data["count"].(type) {
	case float64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case int64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, errors.New("count field missing")
}

// recordSet converts "table:id" strings into driver record ids so they can
// be used in `id IN $ids` membership tests.
func recordSet(ids []string) []interface{} {
	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if i := strings.IndexByte(id, ':'); i > 0 {
			out = append(out, models.RecordID{Table: id[:i], ID: id[i+1:]})
			continue
		}
		out = append(out, id)
	}
	return out
}

// updateByID applies a field patch to one record and refreshes its update
// timestamp. An empty patch is a no-op.
func updateByID(ctx context.Context, db database.Database, id string, patch map[string]interface{}) error {
	clause, vars := setClause(patch)
	if clause == "" {
		return nil
	}
	vars["id"] = id
	query := "UPDATE type::record($id) SET " + clause + ", updated_at = time::now()"
	return db.Execute(ctx, query, vars)
}

// setClause builds the SET fragment and variable map for a patch update.
// Field names come from repository code, never from request input.
func setClause(patch map[string]interface{}) (string, map[string]interface{}) {
	clause := ""
	vars := make(map[string]interface{}, len(patch)+1)
	for field, value := range patch {
		if clause != "" {
			clause += ", "
		}
		clause += fmt.Sprintf("%s = $set_%s", field, field)
		vars["set_"+field] = value
	}
	return clause, vars
}
