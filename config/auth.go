package config

import (
	"time"

	"github.com/spf13/viper"
)

// Auth auth config struct
type Auth struct {
	JWT          *JWT
	CookieDomain string
	CookieSecure bool
	LoginURL     string
}

// JWT jwt config struct
type JWT struct {
	Secret string
	Expire time.Duration
}

// getAuthConfig returns the auth config.
func getAuthConfig(v *viper.Viper) *Auth {
	return &Auth{
		JWT: &JWT{
			Secret: v.GetString("auth.jwt.secret"),
			Expire: getDurationOrDefault(v, "auth.jwt.expire", 14*24*time.Hour),
		},
		CookieDomain: v.GetString("auth.cookie_domain"),
		CookieSecure: getBoolOrDefault(v, "auth.cookie_secure", false),
		LoginURL:     getStringOrDefault(v, "auth.login_url", "/auth/login/"),
	}
}
