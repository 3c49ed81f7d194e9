// Package utils provides common helpers for the country-currency service:
// optional-string conversions and the case-insensitive name identity key.
package utils
