// Package fn provides small generic slice helpers.
package fn

// Map applies mapper to every value and returns the results in order.
func Map[T, U any](values []T, mapper func(T) U) []U {
	result := make([]U, 0, len(values))
	for _, value := range values {
		result = append(result, mapper(value))
	}
	return result
}

// Filter returns the values for which keep returns true, preserving order.
func Filter[T any](values []T, keep func(T) bool) []T {
	result := make([]T, 0, len(values))
	for _, value := range values {
		if keep(value) {
			result = append(result, value)
		}
	}
	return result
}
