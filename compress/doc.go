// Package compress provides payload-shaping codecs for UR transport.
//
// UR streams are often carried over very low-bandwidth channels (animated
// QR codes, NFC tags), where shrinking the payload before fragmentation
// directly reduces the number of parts a receiver has to capture. This
// package offers pluggable compression codecs for that step:
//
//   - CompressionNone: pass-through
//   - CompressionZstd: best ratio, for large payloads
//   - CompressionS2: fastest, for interactive streams
//   - CompressionLZ4: balanced speed and ratio
//
// Shaping happens strictly outside the wire format: the UR envelope and
// the fountain headers are unchanged, only the payload bytes differ, so
// sender and receiver must agree on the codec out of band. See
// ur.WithCompression and ur.WithDecompression.
package compress
