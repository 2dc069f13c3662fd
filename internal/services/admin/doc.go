// Package admin serves the FAQ management page.
//
// Every request loads the selected category from the FAQ backend, applies the
// search and status filter, and renders the table, summary counts and any
// open overlay. Mutations post to the backend and redirect back to the page so
// the list is always the backend's latest state.
package admin
