package queryable

// PolyQueryable is a Queryable whose answer payloads carry heterogeneous
// concrete types behind interface{} - used when a parent routes children
// of different concrete Query/Answer shapes through one wrapper stack.
// Go's Queryable already carries interface{} payloads, so PolyQueryable
// is the same type; the alias names the role at call sites that
// specifically need cross-type routing (combinators/adaptive,
// combinators/odometer).
type PolyQueryable = *Queryable

// Wrapper interposes on a Queryable's query handling, used to enforce
// sequentiality on adaptively-spawned children. Wrapper composition is
// left-to-right, outermost first: ComposeWrappers
// applies ws[0] around the result of wrapping with ws[1:], so ws[0]'s
// interception runs first on every query.
type Wrapper func(PolyQueryable) (PolyQueryable, error)

// ComposeWrappers folds a left-to-right wrapper stack into one Wrapper.
// An empty stack is the identity wrapper.
func ComposeWrappers(ws []Wrapper) Wrapper {
	return func(q PolyQueryable) (PolyQueryable, error) {
		wrapped := q
		for i := len(ws) - 1; i >= 0; i-- {
			var err error
			wrapped, err = ws[i](wrapped)
			if err != nil {
				return nil, err
			}
		}
		return wrapped, nil
	}
}

// WrapIfChild applies wrapper stack ws to raw if raw is itself a
// PolyQueryable: any external answer that contains a child Queryable
// must be wrapped; non-Queryable payloads pass through unchanged.
func WrapIfChild(ws []Wrapper, raw interface{}) (interface{}, error) {
	child, ok := raw.(PolyQueryable)
	if !ok || len(ws) == 0 {
		return raw, nil
	}
	return ComposeWrappers(ws)(child)
}
