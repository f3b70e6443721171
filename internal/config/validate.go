package config

import (
	"fmt"
	"strings"
)

const minJWTSecretLen = 32

// Validate checks business rules that struct tags cannot express.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLen, len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth.cookie_name must not be empty")
	}
	if strings.TrimSpace(c.DynamoDB.InquiriesTable) == "" {
		return fmt.Errorf("dynamodb.inquiries_table must not be empty")
	}
	if strings.TrimSpace(c.Assets.Bucket) == "" {
		return fmt.Errorf("assets.bucket must not be empty")
	}
	if !strings.HasPrefix(c.Assets.PublicBaseURL, "http://") && !strings.HasPrefix(c.Assets.PublicBaseURL, "https://") {
		return fmt.Errorf("assets.public_base_url must be an http(s) URL (got %q)", c.Assets.PublicBaseURL)
	}
	if c.Assets.MaxUploadBytes <= 0 {
		return fmt.Errorf("assets.max_upload_bytes must be > 0 (got %d)", c.Assets.MaxUploadBytes)
	}
	return nil
}
