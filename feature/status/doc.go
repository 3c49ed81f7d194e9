// Package status exposes GET /status, the summary of the last successful
// refresh as recorded in the refresh_metadata row.
package status
