package jsonstore

// Collection is a typed view over an array-valued resource document.
type Collection[T any] struct {
	store *Store
	name  string
}

// NewCollection binds a Collection to the named resource.
func NewCollection[T any](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Name returns the resource name the collection is bound to.
func (c *Collection[T]) Name() string { return c.name }

// All returns every record. A missing file yields an empty slice.
func (c *Collection[T]) All() ([]T, error) {
	items := []T{}
	if err := c.store.Read(c.name, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Find returns the first record matching pred, or false when none does.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool, error) {
	var zero T
	items, err := c.All()
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if pred(item) {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Mutate loads the collection, applies fn, and persists the result, all
// inside the resource's exclusive lock. Returning an error from fn aborts
// without writing.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	return c.store.Update(c.name, func() error {
		items := []T{}
		if err := c.store.Read(c.name, &items); err != nil {
			return err
		}
		updated, err := fn(items)
		if err != nil {
			return err
		}
		return c.store.Write(c.name, updated)
	})
}

// Append adds one record under the collection's lock.
func (c *Collection[T]) Append(item T) error {
	return c.Mutate(func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// Document is a typed view over an object-valued resource (settings.json).
type Document[T any] struct {
	store *Store
	name  string
}

// NewDocument binds a Document to the named resource.
func NewDocument[T any](store *Store, name string) *Document[T] {
	return &Document[T]{store: store, name: name}
}

// Name returns the resource name the document is bound to.
func (d *Document[T]) Name() string { return d.name }

// Get returns the document; a missing file yields the zero value.
func (d *Document[T]) Get() (T, error) {
	var v T
	if err := d.store.Read(d.name, &v); err != nil {
		return v, err
	}
	return v, nil
}

// Put replaces the document under the resource's lock.
func (d *Document[T]) Put(v T) error {
	return d.store.Update(d.name, func() error {
		return d.store.Write(d.name, v)
	})
}
