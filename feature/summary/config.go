package summary

// Config holds configuration for the summary image artifact.
type Config struct {
	// Driver selects the artifact store (minio, filesystem).
	Driver string `mapstructure:"driver" default:"minio"`
	// Directory is the root of the filesystem store.
	Directory string `mapstructure:"directory" default:"."`
	// ObjectName is the artifact's key in the bucket or path under Directory.
	ObjectName string `mapstructure:"object_name" default:"cache/summary.png"`
	// CacheTTLSeconds bounds how long read bytes are served from memory.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

const (
	DriverMinio      = "minio"
	DriverFilesystem = "filesystem"
)
