// Package http hands assembled bodies to net/http.
//
// It provides:
//   - Building a multipart assembly from text and file form fields
//   - Path traversal checks for file fields relative to a base directory
//   - URL validation
//   - Wrapping a body.Value and its headers in a *http.Request with
//     ContentLength and GetBody set
//
// Sending the request is left to the caller's http.Client.
package http
