// Package multipart assembles multipart/form-data request bodies.
//
// It provides:
//   - Part: one named form field with its own headers and payload
//   - Assembly: an ordered list of parts plus optional preamble and epilogue
//   - Boundary validation and random boundary generation (RFC 2046 section 5.1.1)
//   - Header block formatting shared by every part
//   - Encoding that keeps small bodies in memory and spools large ones to a
//     temporary file once MaxMemoryBytes is exceeded
//   - Exact content length estimation without encoding
//
// The wire format is:
//
//	[preamble CRLF]
//	--boundary CRLF headers CRLF body CRLF    (once per part)
//	--boundary--
//	[CRLF epilogue]
//
// Encoding is synchronous. A spooled result owns its temporary file; call
// Cleanup on the returned body.Value once the request has been sent.
package multipart
