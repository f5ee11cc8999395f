// Package rawiter exposes composable iterator pipelines through one fixed size Handle.
//
// Each combinator wraps its input in a small concrete adapter and erases it again with thinkit,
// so a Map over a Filter over a Zip is still just a Handle{object, size} to the caller.
// Items are opaque pointers; the pipeline never looks at them,
// only the caller supplied functions do.
//
// # Ownership
//
// A Handle owns its object exclusively.
// Combinators and consuming terminals take the Handle by pointer and move the object out of it,
// leaving a null Handle behind. Using a null Handle panics.
// Borrowing terminals (Next, Nth, All, Any, Find, FindMap, Position, SizeHint)
// advance the Handle but leave it usable.
// A Handle that is no longer needed must be released with Destroy.
//
// # Absence
//
// A nil Item always means "no item". Exhaustion is never an error,
// and after exhaustion every further advance keeps returning nil.
// Contract violations, like a null Handle or chaining a Handle with itself, panic.
package rawiter
