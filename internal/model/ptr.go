package model

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// value dereferences p, yielding the zero value for nil.
func value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setNullable overwrites dst when the patch carried the key, clearing it on
// an explicit null.
func setNullable[T any](dst **T, src Nullable[T]) {
	if src.Set {
		*dst = clonePtr(src.Value)
	}
}
