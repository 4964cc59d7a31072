package storage

// Config holds configuration for the object storage provider.
type Config struct {
	// Endpoint is the host[:port] of the S3 compatible service; a scheme prefix is stripped.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives history exports.
	Bucket string `mapstructure:"bucket" default:"equipment-exports"`
	// Region of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ExportRetention is how many history exports are kept; 0 keeps all.
	ExportRetention int `mapstructure:"export_retention" default:"30"`
}
