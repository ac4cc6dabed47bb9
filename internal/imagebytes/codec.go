package imagebytes

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// ContentType is the media type negotiated via the Accept header.
const ContentType = "application/imagebytes"

const (
	headerSize      = 44
	metadataVersion = 1
)

// hostLittleEndian is true on the platforms this codec takes the
// whole-buffer fast path on. Big-endian hosts fall back to per-element
// conversion so the wire format stays little-endian everywhere.
var hostLittleEndian = func() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()

// Transaction carries the envelope transaction IDs embedded in the header.
type Transaction struct {
	ClientTransactionID uint32
	ServerTransactionID uint32
}

type header struct {
	metadataVersion  int32
	errorNumber      int32
	clientTxnID      uint32
	serverTxnID      uint32
	dataStart        int32
	imageElemType    int32
	transmissionType int32
	rank             int32
	dim1, dim2, dim3 int32
}

func putHeader(buf []byte, h header) {
	le := binary.LittleEndian
	le.PutUint32(buf[0:], uint32(h.metadataVersion))
	le.PutUint32(buf[4:], uint32(h.errorNumber))
	le.PutUint32(buf[8:], h.clientTxnID)
	le.PutUint32(buf[12:], h.serverTxnID)
	le.PutUint32(buf[16:], uint32(h.dataStart))
	le.PutUint32(buf[20:], uint32(h.imageElemType))
	le.PutUint32(buf[24:], uint32(h.transmissionType))
	le.PutUint32(buf[28:], uint32(h.rank))
	le.PutUint32(buf[32:], uint32(h.dim1))
	le.PutUint32(buf[36:], uint32(h.dim2))
	le.PutUint32(buf[40:], uint32(h.dim3))
}

func parseHeader(buf []byte) header {
	le := binary.LittleEndian
	return header{
		metadataVersion:  int32(le.Uint32(buf[0:])),
		errorNumber:      int32(le.Uint32(buf[4:])),
		clientTxnID:      le.Uint32(buf[8:]),
		serverTxnID:      le.Uint32(buf[12:]),
		dataStart:        int32(le.Uint32(buf[16:])),
		imageElemType:    int32(le.Uint32(buf[20:])),
		transmissionType: int32(le.Uint32(buf[24:])),
		rank:             int32(le.Uint32(buf[28:])),
		dim1:             int32(le.Uint32(buf[32:])),
		dim2:             int32(le.Uint32(buf[36:])),
		dim3:             int32(le.Uint32(buf[40:])),
	}
}

// Encode serializes img into a complete ImageBytes frame. The element buffer
// is appended as raw little-endian bytes; on little-endian hosts this is a
// single copy of the backing buffer.
func Encode(img *Image, txn Transaction) []byte {
	payload := img.wireBytes()
	buf := make([]byte, headerSize+len(payload))
	putHeader(buf, header{
		metadataVersion:  metadataVersion,
		clientTxnID:      txn.ClientTransactionID,
		serverTxnID:      txn.ServerTransactionID,
		dataStart:        headerSize,
		imageElemType:    int32(img.elemType),
		transmissionType: int32(img.elemType),
		rank:             int32(img.rank),
		dim1:             int32(img.dims[0]),
		dim2:             int32(img.dims[1]),
		dim3:             int32(img.dims[2]),
	})
	copy(buf[headerSize:], payload)
	return buf
}

// EncodeError serializes a failed transfer: the header carries the error
// number and the payload is the UTF-8 message.
func EncodeError(ascomErr *ascom.Error, txn Transaction) []byte {
	msg := []byte(ascomErr.Message)
	buf := make([]byte, headerSize+len(msg))
	putHeader(buf, header{
		metadataVersion: metadataVersion,
		errorNumber:     ascomErr.Number,
		clientTxnID:     txn.ClientTransactionID,
		serverTxnID:     txn.ServerTransactionID,
		dataStart:       headerSize,
	})
	copy(buf[headerSize:], msg)
	return buf
}

// Decode parses an ImageBytes frame.
//
// A frame with a non-zero ErrorNumber decodes into a nil Image and an
// *ascom.Error built from the header code and the message payload. A payload
// whose length disagrees with rank x dimensions is rejected outright.
func Decode(buf []byte) (*Image, Transaction, error) {
	if len(buf) < headerSize {
		return nil, Transaction{}, fmt.Errorf("imagebytes: frame of %d bytes is shorter than the %d-byte header", len(buf), headerSize)
	}
	h := parseHeader(buf)
	txn := Transaction{ClientTransactionID: h.clientTxnID, ServerTransactionID: h.serverTxnID}

	if h.metadataVersion != metadataVersion {
		return nil, txn, fmt.Errorf("imagebytes: unsupported metadata version %d", h.metadataVersion)
	}
	if h.dataStart < headerSize || int(h.dataStart) > len(buf) {
		return nil, txn, fmt.Errorf("imagebytes: data start %d out of bounds", h.dataStart)
	}
	payload := buf[h.dataStart:]

	if h.errorNumber != 0 {
		return nil, txn, &ascom.Error{Number: h.errorNumber, Message: string(payload)}
	}

	dims, err := decodeDims(h)
	if err != nil {
		return nil, txn, err
	}
	count := 1
	for _, d := range dims {
		count *= d
	}

	transmission := ElementType(h.transmissionType)
	elemSize := transmission.Size()
	if elemSize == 0 {
		return nil, txn, fmt.Errorf("imagebytes: unsupported transmission element type %d", h.transmissionType)
	}
	if len(payload) != count*elemSize {
		return nil, txn, fmt.Errorf("%w: %d payload bytes for %d %s elements", ErrShape, len(payload), count, transmission)
	}

	imageType := ElementType(h.imageElemType)
	switch {
	case imageType == transmission:
		img, err := decodeDirect(transmission, dims, count, payload)
		return img, txn, err
	case imageType == Int32:
		// Servers may narrow Int32 pixels for transmission; widen them back.
		img, err := decodeWidened(transmission, dims, count, payload)
		return img, txn, err
	default:
		return nil, txn, fmt.Errorf("imagebytes: cannot represent image type %s transmitted as %s", imageType, transmission)
	}
}

func decodeDims(h header) ([]int, error) {
	switch h.rank {
	case 2:
		if h.dim3 != 0 {
			return nil, fmt.Errorf("imagebytes: rank-2 frame declares a third dimension of %d", h.dim3)
		}
		if h.dim1 <= 0 || h.dim2 <= 0 {
			return nil, fmt.Errorf("imagebytes: invalid dimensions %dx%d", h.dim1, h.dim2)
		}
		return []int{int(h.dim1), int(h.dim2)}, nil
	case 3:
		if h.dim1 <= 0 || h.dim2 <= 0 || h.dim3 <= 0 {
			return nil, fmt.Errorf("imagebytes: invalid dimensions %dx%dx%d", h.dim1, h.dim2, h.dim3)
		}
		return []int{int(h.dim1), int(h.dim2), int(h.dim3)}, nil
	default:
		return nil, fmt.Errorf("imagebytes: rank %d not supported (must be 2 or 3)", h.rank)
	}
}

// sliceBytes reinterprets a typed slice as its raw backing bytes.
// Only valid on little-endian hosts, where memory order equals wire order.
func sliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

func (img *Image) wireBytes() []byte {
	if hostLittleEndian {
		switch data := img.data.(type) {
		case []uint8:
			return data
		case []int16:
			return sliceBytes(data)
		case []uint16:
			return sliceBytes(data)
		case []int32:
			return sliceBytes(data)
		case []uint32:
			return sliceBytes(data)
		case []float64:
			return sliceBytes(data)
		}
		panic("imagebytes: unsupported backing buffer")
	}
	return img.wireBytesPortable()
}

// wireBytesPortable converts element by element. Only reached on big-endian
// hosts.
func (img *Image) wireBytesPortable() []byte {
	le := binary.LittleEndian
	switch data := img.data.(type) {
	case []uint8:
		return data
	case []int16:
		out := make([]byte, 2*len(data))
		for i, v := range data {
			le.PutUint16(out[2*i:], uint16(v))
		}
		return out
	case []uint16:
		out := make([]byte, 2*len(data))
		for i, v := range data {
			le.PutUint16(out[2*i:], v)
		}
		return out
	case []int32:
		out := make([]byte, 4*len(data))
		for i, v := range data {
			le.PutUint32(out[4*i:], uint32(v))
		}
		return out
	case []uint32:
		out := make([]byte, 4*len(data))
		for i, v := range data {
			le.PutUint32(out[4*i:], v)
		}
		return out
	case []float64:
		out := make([]byte, 8*len(data))
		for i, v := range data {
			le.PutUint64(out[8*i:], math.Float64bits(v))
		}
		return out
	default:
		panic("imagebytes: unsupported backing buffer")
	}
}

// fillSlice copies raw little-endian payload bytes into a freshly allocated
// typed slice. On little-endian hosts this is a single memmove into the
// (correctly aligned) new backing array.
func fillSlice[T any](payload []byte, count int, fromWire func([]byte) T) []T {
	out := make([]T, count)
	if count == 0 {
		return out
	}
	if hostLittleEndian {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(payload)), payload)
		return out
	}
	size := int(unsafe.Sizeof(out[0]))
	for i := range out {
		out[i] = fromWire(payload[i*size:])
	}
	return out
}

func decodeDirect(elemType ElementType, dims []int, count int, payload []byte) (*Image, error) {
	le := binary.LittleEndian
	switch elemType {
	case Byte:
		data := make([]uint8, count)
		copy(data, payload)
		return newImage(Byte, dims, count, data)
	case Int16:
		return newImage(Int16, dims, count, fillSlice(payload, count, func(b []byte) int16 { return int16(le.Uint16(b)) }))
	case UInt16:
		return newImage(UInt16, dims, count, fillSlice(payload, count, func(b []byte) uint16 { return le.Uint16(b) }))
	case Int32:
		return newImage(Int32, dims, count, fillSlice(payload, count, func(b []byte) int32 { return int32(le.Uint32(b)) }))
	case UInt32:
		return newImage(UInt32, dims, count, fillSlice(payload, count, func(b []byte) uint32 { return le.Uint32(b) }))
	case Double:
		return newImage(Double, dims, count, fillSlice(payload, count, func(b []byte) float64 { return math.Float64frombits(le.Uint64(b)) }))
	default:
		return nil, fmt.Errorf("imagebytes: unsupported element type %s", elemType)
	}
}

// decodeWidened expands a narrowed transmission buffer back into the Int32
// pixels the image declares. This path is inherently per-element.
func decodeWidened(transmission ElementType, dims []int, count int, payload []byte) (*Image, error) {
	le := binary.LittleEndian
	data := make([]int32, count)
	switch transmission {
	case Byte:
		for i := range data {
			data[i] = int32(payload[i])
		}
	case Int16:
		for i := range data {
			data[i] = int32(int16(le.Uint16(payload[2*i:])))
		}
	case UInt16:
		for i := range data {
			data[i] = int32(le.Uint16(payload[2*i:]))
		}
	default:
		return nil, fmt.Errorf("imagebytes: cannot widen %s to int32", transmission)
	}
	return newImage(Int32, dims, count, data)
}
