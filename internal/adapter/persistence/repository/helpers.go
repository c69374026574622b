package repository

import (
	"fmt"
	"os"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// UnprocessedItemsError reports items DynamoDB still refused after the
// batch retries. The caller decides whether the partial lot is usable.
type UnprocessedItemsError struct {
	Count int
}

func (e *UnprocessedItemsError) Error() string {
	return fmt.Sprintf("dynamodb batch write left %d unprocessed items", e.Count)
}
