package mocks

import "github.com/stretchr/testify/mock"

// value returns the i-th return value as T, or T's zero value when the expectation returned nil.
func value[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}
