package floatptr

// Ref is a non-owning binding to an existing T, stored in the
// address-as-double representation. It adapts "taking the address of a live
// object" into a Pointer; it carries no comparison, arithmetic, or special
// states of its own.
//
// The pointee's lifetime belongs to its owner. A Ref is valid exactly as
// long as the referenced object is.
type Ref[T any] struct {
	ptr Pointer[T]
}

// RefOf binds to the object target points at.
//
// Requiring *T is the static lvalue restriction: only addressable storage
// produces a *T, so a plain value can never be passed here by accident.
func RefOf[T any](target *T) Ref[T] {
	return Ref[T]{ptr: From(target)}
}

// Get returns the bound object. Mutations through the returned pointer, or
// of the original variable, are visible both ways.
func (r Ref[T]) Get() *T {
	return r.ptr.Ptr()
}
