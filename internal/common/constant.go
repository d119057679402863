// Package common contains shared constants and sentinel errors used across
// medianest components.
package common

// APIKeyHeaderName is the HTTP header carrying the shared store credential
// on every request to the remote media store.
const APIKeyHeaderName = "x-api-key"

// UploadFieldName is the multipart form field holding the uploaded file.
const UploadFieldName = "file"
