// Package media defines the packet and buffer data model shared by every
// stage of an avfoundation pipeline.
//
// The package provides a pure Go implementation of the foundation types
// that flow between sources, codecs, and handler-driven pipeline stages:
//   - Buffer: a byte container with an adjustable valid range and
//     per-buffer metadata
//   - Packet: a tagged container holding either an owned buffer or an
//     opaque native handle, plus media-type-specific sample information
//   - MetaData: a typed key/value description of a stream format
//
// The design follows established patterns from the avfoundation codebase:
//   - Plain data types with no scheduling or concurrency of their own
//   - Explicit error returns for misuse instead of silent corruption
//   - Interface-free value semantics so packets can cross package
//     boundaries without coupling
//
// None of these types are safe for concurrent mutation; ownership is
// expected to transfer along the pipeline, one stage at a time.
package media
