// Package http implements the HTTP trigger of the node.
//
// A trigger request carries the node parameters and the document of a single
// item as a multipart form; a run request carries a whole manifest as JSON.
// Both are forwarded to the signature request service. The journal of past
// runs is exposed read-only. Request tracing, access logging, optional JWT
// authentication and gzip handling are applied before a request reaches a
// route.
package http
