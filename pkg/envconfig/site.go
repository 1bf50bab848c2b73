package envconfig

// SiteConfig holds site-level settings read once at process start.
type SiteConfig struct {
	SessionCookie string // name of the session cookie
}

// StorageConfig holds object storage settings for image uploads.
type StorageConfig struct {
	Bucket          string
	CredentialsFile string // service account key path; empty uses ADC
	PublicBaseURL   string // base URL public object links are built from
}

// LoadSiteConfig reads site settings from environment variables
func LoadSiteConfig() SiteConfig {
	return SiteConfig{
		SessionCookie: GetEnv("SESSION_COOKIE_NAME", "afc_session"),
	}
}

// LoadStorageConfig reads object storage settings from environment variables
func LoadStorageConfig() StorageConfig {
	bucket := GetEnv("STORAGE_BUCKET", "product_images")
	return StorageConfig{
		Bucket:          bucket,
		CredentialsFile: GetEnv("STORAGE_CREDENTIALS_FILE", ""),
		PublicBaseURL:   GetEnv("STORAGE_PUBLIC_URL", "https://storage.googleapis.com/"+bucket),
	}
}
