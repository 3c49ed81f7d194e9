// Package models defines the persisted entities and transport shapes of the
// countries feature.
//
// Country and RefreshMetadata are GORM models; their column tags double as
// the expected schema for the integrity checks. The remaining types describe
// upstream payloads (RawCountry, ExchangeRateResponse), the pipeline's
// intermediate MergedRecord and the JSON bodies of the HTTP API.
package models
