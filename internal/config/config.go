package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port           string
		AllowedOrigins []string
	}
	Database struct {
		URL string
	}
	Redis struct {
		URL string
	}
	Documents struct {
		Dir string
	}
	LLM struct {
		APIKey  string
		BaseURL string
		Model   string
	}
	Feedback struct {
		Email    string
		SMTPHost string
		SMTPPort int
		SMTPUser string
		SMTPPass string
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	viper.SetDefault("database.url", "")
	viper.SetDefault("redis.url", "")
	viper.SetDefault("documents.dir", "data")
	viper.SetDefault("llm.base_url", "https://api.openai.com/v1")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("feedback.smtp_port", 587)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Server.AllowedOrigins = viper.GetStringSlice("server.allowed_origins")
	config.Database.URL = viper.GetString("database.url")
	config.Redis.URL = viper.GetString("redis.url")
	config.Documents.Dir = viper.GetString("documents.dir")
	config.LLM.BaseURL = viper.GetString("llm.base_url")
	config.LLM.Model = viper.GetString("llm.model")
	config.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	config.Feedback.Email = viper.GetString("feedback.email")
	config.Feedback.SMTPHost = viper.GetString("feedback.smtp_host")
	config.Feedback.SMTPPort = viper.GetInt("feedback.smtp_port")
	config.Feedback.SMTPUser = os.Getenv("SMTP_USER")
	config.Feedback.SMTPPass = os.Getenv("SMTP_PASSWORD")

	return &config, nil
}

func (c *Config) ValidateLLM() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm.base_url is required")
	}
	return nil
}

// HasDatabase reports whether message/feedback persistence is configured.
// The assistant itself runs fine without it.
func (c *Config) HasDatabase() bool {
	return c.Database.URL != ""
}

// HasRedis reports whether the answer cache is configured.
func (c *Config) HasRedis() bool {
	return c.Redis.URL != ""
}
