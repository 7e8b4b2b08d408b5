// Package conformance runs one service-level test suite against every
// storage backend. A backend passes when its observable behaviour through the
// services (messages, payload shapes, ordering, not-found handling) matches
// the others exactly.
package conformance
