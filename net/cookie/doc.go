// Package cookie sets and reads the two cookies of the site: the signed
// session token and the CSRF token.
//
//	opts := cookie.Options{Domain: cfg.Auth.CookieDomain, Secure: cfg.Auth.CookieSecure}
//	_ = cookie.SetSessionToken(w, token, ttl, opts)
//	token, err := cookie.GetSessionToken(r)
//	cookie.ClearSessionToken(w, opts)
//
// All cookies are HttpOnly, SameSite=Lax and scoped to "/".
package cookie
