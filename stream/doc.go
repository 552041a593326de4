// Package stream provides a seekable read-only byte-source abstraction.
//
// The [Stream] interface is the contract consumed by font and resource
// readers: sequential reads plus absolute seeking, position reporting, and
// rewind. Two implementations are provided:
//
//   - [FileStream] - backed by a read-only file on disk
//   - [MemoryStream] - backed by an in-memory byte slice
//
// All operations propagate I/O failures as errors; none of them block
// indefinitely. Streams are not safe for concurrent use.
package stream
