// Package codec provides capability discovery and instantiation of codec
// implementations for avfoundation pipelines.
//
// Concrete codec implementations register a Factory with the process-wide
// registry, reporting the codecs they support, a name, and a priority.
// Consumers then instantiate codecs by id or by name without coupling to
// concrete types:
//
//	codec.RegisterFactory(codec.NewOpusFactory())
//	dec, err := codec.CreateCodecByType(media.CodecOpus, false)
//
// When multiple factories can satisfy a request, the highest-priority
// factory wins; ties go to the factory registered first. The registry has
// process lifetime and is safe for concurrent use.
//
// Two factories ship with the package: OpusFactory, a decoder-only
// factory backed by the pure Go pion/opus decoder, and PCMFactory, a
// passthrough for uncompressed audio. Codec execution semantics beyond
// the Codec interface (buffer format negotiation, hardware acceleration)
// are owned by the implementations, not by this package.
package codec
