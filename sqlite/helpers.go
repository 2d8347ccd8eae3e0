package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
)

// encodeKeyPoints stores key points as a JSON array.
func encodeKeyPoints(points []string) (string, error) {
	if len(points) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(points)
	if err != nil {
		return "", fmt.Errorf("failed to encode key points: %w", err)
	}
	return string(b), nil
}

// decodeKeyPoints parses a JSON array of key points. An empty array yields nil.
func decodeKeyPoints(value string) ([]string, error) {
	var points []string
	if err := json.Unmarshal([]byte(value), &points); err != nil {
		return nil, fmt.Errorf("failed to parse key_points: %w", err)
	}
	if len(points) == 0 {
		return nil, nil
	}
	return points, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		// SQLite requires a LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
