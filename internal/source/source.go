// Package source provides the collaborators that fetch the initial record
// set: HTTP(S) URLs, S3 objects, local files and SQL tables.
package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jacksmith/adminui/internal/model"
)

// DefaultURI is the members dataset the admin panel was built around.
const DefaultURI = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"

// maxBodyBytes caps how much of a remote document is read.
const maxBodyBytes = 16 << 20

// Source yields the initial record set once per call.
type Source interface {
	// Fetch returns the records in source order. Every failure, including a
	// malformed document, is returned as a *LoadError.
	Fetch(ctx context.Context) ([]model.Record, error)
	// String describes the source for messages and logs.
	String() string
}

// LoadError reports that the initial fetch failed or returned malformed data.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load records from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadError(s Source, err error) error {
	return &LoadError{Source: s.String(), Err: err}
}

// Options carries settings that only some sources use.
type Options struct {
	S3 S3Config
}

// Open returns the Source for uri.
//
// Supported forms:
//
//	http://host/path, https://host/path
//	s3://bucket/key
//	file:///path/to/users.json, ./users.yaml (bare paths)
//	sqlite:///path/to/db.sqlite?table=users
//	postgres://user@host/db?table=users (also postgresql://)
//
// SQL sources accept an optional order=<column> parameter.
func Open(ctx context.Context, uri string, opts Options) (Source, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, fmt.Errorf("no record source configured")
	}
	if !strings.Contains(uri, "://") {
		return NewFileSource(uri), nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid source %q: %w", uri, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTPSource(uri, nil), nil
	case "file":
		path := u.Path
		if u.Host != "" {
			path = u.Host + path
		}
		return NewFileSource(path), nil
	case "s3":
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("invalid s3 source %q: expected s3://bucket/key", uri)
		}
		return NewS3Source(ctx, u.Host, key, opts.S3)
	case "sqlite", "sqlite3":
		return openSQLite(uri)
	case "postgres", "postgresql":
		return openPostgres(u)
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}
