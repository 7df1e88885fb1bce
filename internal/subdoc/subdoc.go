// Package subdoc edits arrays of identified elements embedded in a parent
// document. Every function is pure: the input slice is never modified and the
// caller persists the returned slice with its parent.
package subdoc

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no element carries the requested id.
var ErrNotFound = errors.New("subdoc: element not found")

// Element is implemented by pointers to embedded elements.
type Element[T any] interface {
	*T
	ElementID() string
	SetElementID(id string)
}

// Patchable elements accept an allow-listed field update.
type Patchable[T any] interface {
	Element[T]
	ApplyPatch(patch T)
}

func ensureID[E any, P Element[E]](e *E) {
	if P(e).ElementID() == "" {
		P(e).SetElementID(uuid.NewString())
	}
}

// InsertFront assigns e an id if it has none and prepends it.
func InsertFront[S ~[]E, E any, P Element[E]](items S, e E) (S, E) {
	ensureID[E, P](&e)
	out := make(S, 0, len(items)+1)
	out = append(out, e)
	out = append(out, items...)
	return out, e
}

// Append assigns e an id if it has none and appends it.
func Append[S ~[]E, E any, P Element[E]](items S, e E) (S, E) {
	ensureID[E, P](&e)
	out := make(S, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, e)
	return out, e
}

// FindByID returns the first element with the given id.
func FindByID[S ~[]E, E any, P Element[E]](items S, id string) (E, error) {
	i := indexOf[S, E, P](items, id)
	if i < 0 {
		var zero E
		return zero, ErrNotFound
	}
	return items[i], nil
}

// IndexWhere returns the index of the first element matching pred, or -1.
func IndexWhere[S ~[]E, E any](items S, pred func(E) bool) int {
	return slices.IndexFunc(items, pred)
}

// RemoveAt returns items without the element at i, preserving order.
// The result is never nil.
func RemoveAt[S ~[]E, E any](items S, i int) S {
	out := make(S, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// RemoveByID removes exactly the element with the given id.
func RemoveByID[S ~[]E, E any, P Element[E]](items S, id string) (S, error) {
	i := indexOf[S, E, P](items, id)
	if i < 0 {
		return items, ErrNotFound
	}
	return RemoveAt(items, i), nil
}

// UpdateByID applies patch to the element with the given id. The element
// keeps its id whatever the patch carries.
func UpdateByID[S ~[]E, E any, P Patchable[E]](items S, id string, patch E) (S, E, error) {
	i := indexOf[S, E, P](items, id)
	if i < 0 {
		var zero E
		return items, zero, ErrNotFound
	}
	out := slices.Clone(items)
	P(&out[i]).ApplyPatch(patch)
	P(&out[i]).SetElementID(id)
	return out, out[i], nil
}

func indexOf[S ~[]E, E any, P Element[E]](items S, id string) int {
	return slices.IndexFunc(items, func(e E) bool { return P(&e).ElementID() == id })
}
