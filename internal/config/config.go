// file: internal/config/config.go
// version: 2.0.0
// guid: 9e0f1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	RootDir   string
	CachePath string
	// Workers bounds the reconcile/write worker pools.
	Workers int
	// Backup makes a sibling copy of every file before tag writes.
	Backup bool
	// KeepBackups leaves backup copies in place after successful writes.
	KeepBackups bool
	// SourceTimeoutSeconds applies per external source call.
	SourceTimeoutSeconds int
	SupportedExtensions  []string
	OpenAI               struct {
		APIKey  string
		Enabled bool
	}
}

var AppConfig Config

// InitConfig initializes the application configuration from viper.
func InitConfig() {
	viper.SetDefault("workers", 10)
	viper.SetDefault("backup", true)
	viper.SetDefault("keep_backups", false)
	viper.SetDefault("source_timeout_seconds", 20)
	viper.SetDefault("cache_path", "")

	AppConfig = Config{
		RootDir:              viper.GetString("root_dir"),
		CachePath:            viper.GetString("cache_path"),
		Workers:              viper.GetInt("workers"),
		Backup:               viper.GetBool("backup"),
		KeepBackups:          viper.GetBool("keep_backups"),
		SourceTimeoutSeconds: viper.GetInt("source_timeout_seconds"),
		SupportedExtensions: []string{
			".m4b", ".m4a", ".mp4", ".aac", ".mp3", ".flac", ".ogg", ".opus",
		},
	}

	AppConfig.OpenAI.APIKey = viper.GetString("openai.api_key")
	AppConfig.OpenAI.Enabled = viper.GetBool("openai.enabled")

	if AppConfig.Workers < 1 {
		AppConfig.Workers = 10
	}
}
