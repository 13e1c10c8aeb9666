// Package domain contains the core model for paradigm: how a single name is
// displayed, how a display name becomes a list item, and the configuration
// that selects between the available list styles.
//
// The domain is I/O-agnostic: it does not read files, parse YAML or talk to a
// terminal. Infra/adapters map into/from these types.
package domain
