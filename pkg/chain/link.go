package chain

import "reflect"

// Link sets next as the successor of h, keeping the chain linear.
// Handlers are compared by identity, so they must be pointer types.
// On error h is left untouched.
func Link(h, next Handler) error {
	if isNil(h) || isNil(next) {
		return ErrNilHandler
	}
	if h == next {
		return ErrSelfLink
	}

	seen := map[Handler]struct{}{}
	for n := next; n != nil; n = n.Next() {
		if n == h {
			return ErrCycle
		}
		if _, ok := seen[n]; ok {
			return ErrCycle
		}
		seen[n] = struct{}{}
	}

	h.SetNext(next)
	return nil
}

// isNil reports whether h is a nil interface or wraps a nil pointer.
func isNil(h Handler) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
