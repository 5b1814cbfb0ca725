package approx

// Float is the constraint satisfied by the floating-point types all
// approximations in this package operate on. The coefficient sets are
// shared between both precisions; they are written as untyped
// constants so each instantiation evaluates them at its own precision.
type Float interface {
	~float32 | ~float64
}
