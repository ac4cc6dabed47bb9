// Package imagebytes implements the Alpaca ImageBytes binary transfer format
// for camera pixel arrays.
//
// ImageBytes avoids the cost of JSON-encoding multi-megapixel frames. The
// wire layout is a fixed 44-byte little-endian header followed by the raw
// element buffer in row-major order with no padding:
//
//	offset  field
//	0       MetadataVersion        (always 1)
//	4       ErrorNumber            (0 on success)
//	8       ClientTransactionID
//	12      ServerTransactionID
//	16      DataStart              (always 44)
//	20      ImageElementType
//	24      TransmissionElementType
//	28      Rank                   (2 or 3)
//	32      Dimension1
//	36      Dimension2
//	40      Dimension3             (0 when Rank is 2)
//
// When ErrorNumber is non-zero the payload is a UTF-8 error message instead
// of pixel data, so a failed transfer never has to fall back to JSON.
//
// The codec moves pixel data as whole buffers (a single memmove on
// little-endian hosts); it never walks elements one at a time on that path.
package imagebytes
