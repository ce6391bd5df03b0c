package service

// IDGenerator issues prefixed, zero-padded sequence identifiers such as
// "U007" and persists the last issued number per prefix so sequences
// survive process restarts.
type IDGenerator interface {
	// NextID returns the next identifier for the given short prefix.
	// Generation is serialized within the process; concurrent callers never
	// receive the same identifier twice. There is no cross-process lock.
	NextID(prefix string) (string, error)

	// NextIDExcluding returns the next identifier for the prefix that is not
	// present in the existing set. Discarded candidates still advance the
	// persisted counter.
	NextIDExcluding(prefix string, existing []string) (string, error)
}
