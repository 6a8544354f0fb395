// Package server runs the HTTP trigger of the node.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight signature requests finish.
package server
