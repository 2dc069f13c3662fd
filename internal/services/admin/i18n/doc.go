// Package i18n resolves the operator's UI language and builds message
// printers backed by the embedded admin catalogs.
package i18n
