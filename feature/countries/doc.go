// Package countries implements the country currency feature: the refresh
// pipeline and the read API over the stored country set.
//
// # Refresh
//
// A refresh moves through these stages:
//
//	fetching_countries → fetching_rates → reconciling → persisting →
//	updating_metadata → regenerating_artifact → done
//
// Both upstream sources are fetched concurrently; if either fails nothing is
// written and the *sources.ExternalSourceError is returned. Raw records are
// validated and merged with their currency's rate (see Merge), then reconciled
// against the whole stored set, loaded once and indexed by folded name.
// Inserts, updates and the refresh_metadata row are written in one
// transaction. The summary image is regenerated after commit; a failure there
// is logged and never fails the refresh.
//
// Only one refresh runs at a time. Callers arriving while one is in flight
// wait for it and receive its result.
//
// # Identity
//
// Countries are identified by name, compared case-insensitively through the
// name_key column (NFC normalized, Unicode case folded). The id assigned at
// first insertion and the stored name casing never change afterwards.
//
// # Routes
//
//	POST   /countries/refresh
//	GET    /countries?region=&currency=&sort=
//	GET    /countries/image
//	GET    /countries/:name
//	DELETE /countries/:name
package countries
