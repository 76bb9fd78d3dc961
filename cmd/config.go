package cmd

import "time"

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	UploadDir          string
	MaxFileSize        int64
	MaxFilesPerRequest int
	AdminTokenHash     string
	AppEnv             string
	SweepGrace         time.Duration
}

// IsDevelopment reports whether client responses may carry internal error
// detail.
func (c Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}
