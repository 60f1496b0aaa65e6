package utils

import (
	"golang.org/x/exp/constraints"
)

// Generates a sequence of n elements given a generation function
func Iota[T any](n int, gen func(int) T) []T {
	values := make([]T, n)

	for i := range values {
		values[i] = gen(i)
	}

	return values
}

// Generates a map from a sequence of items and a function that generates a key from an item
func GenMap[T any, Key comparable](input []T, keyFunc func(T) Key) map[Key]T {
	output := make(map[Key]T, len(input))

	for _, value := range input {
		output[keyFunc(value)] = value
	}

	return output
}

// Generates a map from a sequence of keys and a function that generates a value from a key
func GenMapFromKeys[Key comparable, T any](keys []Key, valueFunc func(Key) T) map[Key]T {
	output := make(map[Key]T, len(keys))

	for _, key := range keys {
		output[key] = valueFunc(key)
	}

	return output
}

// Concatenates the sequences returned by a function applied to each item of the input sequence
func ConcatMap[T any, U any](input []T, mapFunction func(T) []U) []U {
	var output []U

	for _, value := range input {
		output = append(output, mapFunction(value)...)
	}

	return output
}

// Returns the items of a sequence for which the predicate holds
func Filter[T any](input []T, predicate func(T) bool) []T {
	output := make([]T, 0, len(input))

	for _, value := range input {
		if predicate(value) {
			output = append(output, value)
		}
	}

	return output
}

// Reduces a sequence to a value given an accumulation function
func Reduce[T any, U any](input []T, foldFunc func(T, U) U) U {
	var result U

	for _, value := range input {
		result = foldFunc(value, result)
	}

	return result
}

// Reduces a sequence by adding up the value returned by a function applied to each item
func Accumulate[T any, U constraints.Ordered](input []T, value func(T) U) U {
	return Reduce(input, func(item T, current U) U {
		return value(item) + current
	})
}

// Returns the biggest item of a sequence
func Max[T constraints.Ordered](input []T) T {
	max := input[0]

	for _, item := range input {
		if item > max {
			max = item
		}
	}

	return max
}
