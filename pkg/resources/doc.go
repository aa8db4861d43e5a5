// Package resources is the shared domain catalog: typed identifiers,
// timestamps, currencies, metadata, list envelopes and the resource objects
// returned by the API.
//
// Response enums are open. Every enum is a string type with constants for the
// values this version knows; decoding never fails on a new value, which is kept
// verbatim and reports IsUnknown. Identifiers are distinct string types per
// resource so an InvoiceID cannot be passed where a SetupIntentID is expected.
package resources
