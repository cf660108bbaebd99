// Package cache is the durable key/value slot layer under the recipe store,
// the browser-localStorage analogue. Reads report presence rather than error;
// a missing or unreadable key is just "not there".
package cache

type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
