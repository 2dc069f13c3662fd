// Package faq defines FAQ records as the admin surface sees them and the pure
// list operations (search, status filtering, summary counts) applied to a
// category's records before rendering.
//
// Records are owned by the backend. Nothing in this package assigns
// identifiers or display order.
package faq
