// Package checks holds the individual integrity checks: database schema
// against the GORM models, and the layout of the artifact bucket.
package checks
