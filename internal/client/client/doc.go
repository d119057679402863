// Package client talks to the remote media store.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     three store operations: List, Upload and Delete.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the shared
//     x-api-key credential to every request, builds the multipart upload body
//     and the JSON delete body, and maps failures to sentinel errors.
//
// # Wire contract
//
//	GET    <base>  x-api-key              -> 2xx {"files": [...]}
//	POST   <base>  x-api-key, multipart   -> 2xx (field "file", filename + type)
//	DELETE <base>  x-api-key, JSON        -> 2xx (body {"fileId": "<id>"})
//
// # Error Handling
//
// Network failures wrap common.ErrTransport. Non-2xx responses are returned as
// *StoreError, which matches common.ErrStoreRejection and keeps the status code
// and response body for diagnostics. A local file that cannot be read for lack
// of permission wraps common.ErrPermissionDenied.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; no timeout is added beyond the transport's own.
package client
