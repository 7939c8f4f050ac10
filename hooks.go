package percent

// Hooks are callbacks for high-signal events in stores that escape their keys.
// Implementations MUST be cheap and non-blocking.
type Hooks interface {
	// A stored key did not decode back into a user key (foreign write or
	// malformed escape under Strict mode). err is a *DecodeError or a
	// namespace mismatch.
	KeyRejected(storageKey string, err error)

	// A stored value failed to decode and was deleted.
	// reason ∈ {"value_decode"}
	ValueDropped(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) KeyRejected(string, error)   {}
func (NopHooks) ValueDropped(string, string) {}
func (NopHooks) ProviderSetRejected(string)  {}
