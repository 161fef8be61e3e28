package visitor

// Visitor iterates over (key, element) pairs of a payload container.
// Iteration stops when the callback returns false or an error; the error is returned to the caller.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Each visits every pair, stopping only on error
func (v Visitor[K, E]) Each(f func(key K, element E) error) error {
	return v(func(key K, element E) (bool, error) {
		return true, f(key, element)
	})
}
