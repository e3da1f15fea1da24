// Package objstore provides the object-storage gateway used for applicant
// photos and signatures. Uploads are idempotent-by-overwrite at a given key;
// the returned URL is durable and public.
package objstore

import "context"

// Store uploads binary assets and returns their public URLs.
type Store interface {
	// Put stores data under key and returns a public URL for it.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
