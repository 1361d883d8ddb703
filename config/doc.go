// Package config loads the site configuration with Viper.
//
// The file is YAML, JSON or TOML. With no explicit path it is searched as
// "config" in ".", "/etc/yatube" and "$HOME/.yatube"; a missing file there
// leaves every key at its default. Example:
//
//	server:
//	  host: 127.0.0.1
//	  port: 8000
//
//	data:
//	  database:
//	    driver: sqlite
//	    source: "file:yatube.db?_foreign_keys=on"
//
//	auth:
//	  jwt:
//	    secret: change-me
//	    expire: 336h
//
//	paging:
//	  per_page: 10
//
// # Environment Variables
//
// Any key can be overridden with a YATUBE_ prefixed variable, dots replaced
// by underscores:
//
//	export YATUBE_SERVER_PORT=9000
//	export YATUBE_AUTH_JWT_SECRET=production-secret
//
// # Hot Reloading
//
// Watch re-reads the file on change and passes the new configuration to
// the callback:
//
//	config.Watch(func(cfg *config.Config) {
//	    log.Println("configuration reloaded")
//	})
package config
