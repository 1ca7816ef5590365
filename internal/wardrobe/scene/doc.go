// Package scene models the host runtime that owns the shared virtual space.
//
// The wardrobe core never renders or simulates anything itself; it issues
// scene mutations (create, destroy, attach) to a host implementation behind
// the Scene interface and trusts the host to realize them. Calls are
// synchronous intent records: the host acknowledges the request immediately
// and the core does not await realization.
package scene
