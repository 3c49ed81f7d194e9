// Package summary renders and stores the summary image of the country set.
//
// The image (800x600 PNG) shows the total number of countries, the five
// countries with the highest estimated GDP and the time of the last refresh.
// It is drawn with the Go fonts through golang.org/x/image and kept either as
// an object in the storage bucket or as a file on disk.
//
// # Consistency
//
// A new image is only produced after a refresh committed. Both stores replace
// the previous image atomically, so readers always get a complete image. A
// failed regeneration leaves the previous image in place and is reported as
// *GenerationError; it never undoes the refresh.
//
// # Caching
//
// Reads go through an expirable LRU (hashicorp/golang-lru). Writes made by
// this process replace the cached bytes immediately.
package summary
