package utils

func MapSlice[T any, R any](input []T, fn func(T) R) []R {
	if input == nil {
		return nil
	}

	result := make([]R, len(input))
	for i, v := range input {
		result[i] = fn(v)
	}
	return result
}

func EmptyIfNil[T any](input []T) []T {
	if input == nil {
		return make([]T, 0)
	}
	return input
}

// FirstDuplicate returns the first key that occurs more than once.
func FirstDuplicate[T any, K comparable](input []T, key func(T) K) (K, bool) {
	seen := make(map[K]struct{}, len(input))
	for _, v := range input {
		k := key(v)
		if _, ok := seen[k]; ok {
			return k, true
		}
		seen[k] = struct{}{}
	}
	return Zero[K](), false
}
