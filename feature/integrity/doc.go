// Package integrity provides infrastructure health checks for the country service.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database matches the persisted models
//     (countries, refresh_metadata), column by column.
//   - Storage: Checks that the artifact bucket and its prefixes exist. It can create them.
//   - Artifact: Checks that the rendered summary image is present.
//
// Storage and artifact checks are skipped when the summary image is kept on the
// local filesystem.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
//   - GET /integrity/artifact : Runs artifact check.
package integrity
