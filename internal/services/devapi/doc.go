// Package devapi is a development FAQ backend serving the same JSON contract
// the admin page consumes, backed by an in-memory store.
//
// Records get server-assigned UUIDs and a display order one past the highest
// order in their category. Nothing is persisted across restarts.
package devapi
