//go:build !entitycore_debug

package store

const debugAssertsEnabled = false

// debugAssertMetadata is a no-op in release builds; metadata violations are a
// generator bug and are left unchecked here.
func debugAssertMetadata(*Extractor) {}
