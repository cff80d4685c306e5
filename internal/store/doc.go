// Package store defines the persistence interfaces and errors consumed by
// the rest of the application. Implementations live under
// internal/platform.
package store
