package backoffice

import "strings"

// Search keeps items where any field contains query, ignoring case. A blank query keeps
// every item. The result never shares its backing array with items.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || fields == nil {
		return append([]T(nil), items...)
	}

	matched := make([]T, 0, len(items))

	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				matched = append(matched, item)

				break
			}
		}
	}

	return matched
}
