// Package version exposes build metadata set with ldflags:
//
//	go build -ldflags "-X github.com/ncobase/yatube/version.Version=v1.0.0"
package version
