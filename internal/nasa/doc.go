// Package nasa provides an HTTP client for NASA's image and video library API.
//
// # Overview
//
// Two read-only endpoints are used:
//
//   - GET /search?q=<query>&media_type=image: result list for the search grid
//   - GET /asset/<nasa_id>: every rendition of one asset
//
// Search maps each hit to an ImageSummary, keeping the API's order and
// crediting "Uncredited" when the metadata names no photographer. Asset picks
// the first rendition whose href contains "~orig" and upgrades an http://
// prefix to https://.
//
// # Client Usage
//
//	client, err := nasa.NewClient(nasa.Options{Timeout: 10 * time.Second})
//	if err != nil {
//		return err
//	}
//	images, err := client.Search(ctx, "apollo 11")
//	href, err := client.Asset(ctx, images[0].AssetID)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Wait on a shared token-bucket limiter (4 req/s by default)
//   - Advertise Accept-Encoding "br, gzip" and decode whichever the server picks
//   - Consult the optional cache.Cache before touching the network and store
//     successful bodies afterwards
//
// # Error Handling
//
//   - ErrEmptyQuery / ErrEmptyAssetID: caller passed an empty string
//   - *APIError: non-2xx status, with the API's "reason" text when present
//   - ErrMalformedResponse: valid JSON missing collection, data or links
//   - ErrNoOriginal: the asset lists no original-resolution rendition
//   - Wrapped transport and decode errors ("execute request", "decode response")
//
// Callers can use errors.Is / errors.As on every returned error.
package nasa
