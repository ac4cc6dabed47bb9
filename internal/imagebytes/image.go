package imagebytes

import (
	"errors"
	"fmt"
)

// ElementType identifies the numeric type of image elements, using the code
// points assigned by the Alpaca specification.
type ElementType int32

const (
	Unknown ElementType = 0
	Int16   ElementType = 1
	Int32   ElementType = 2
	Double  ElementType = 3
	Byte    ElementType = 6
	UInt16  ElementType = 8
	UInt32  ElementType = 9
)

// Size returns the element width in bytes, or 0 for types this codec does
// not transfer.
func (t ElementType) Size() int {
	switch t {
	case Byte:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}

func (t ElementType) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Double:
		return "double"
	case Byte:
		return "byte"
	case UInt16:
		return "uint16"
	case UInt32:
		return "uint32"
	default:
		return fmt.Sprintf("elementtype(%d)", int32(t))
	}
}

// ErrShape is returned when dimensions and element count disagree.
var ErrShape = errors.New("imagebytes: element count does not match dimensions")

// Image is a strongly typed N-dimensional pixel array in row-major order.
//
// Rank is 2 (monochrome) or 3 (a third axis of colour planes). The backing
// buffer is one of []uint8, []int16, []uint16, []int32, []uint32 or
// []float64 depending on ElementType, and its length always equals the
// product of the dimensions. Images are immutable once constructed.
type Image struct {
	elemType ElementType
	rank     int
	dims     [3]int
	data     any
}

func newImage(elemType ElementType, dims []int, count int, data any) (*Image, error) {
	img := &Image{elemType: elemType, data: data}
	switch len(dims) {
	case 2:
		img.rank = 2
		img.dims = [3]int{dims[0], dims[1], 0}
	case 3:
		img.rank = 3
		img.dims = [3]int{dims[0], dims[1], dims[2]}
	default:
		return nil, fmt.Errorf("imagebytes: rank %d not supported (must be 2 or 3)", len(dims))
	}
	for i := 0; i < img.rank; i++ {
		if img.dims[i] <= 0 {
			return nil, fmt.Errorf("imagebytes: dimension %d is %d (must be positive)", i+1, img.dims[i])
		}
	}
	if want := img.ElementCount(); count != want {
		return nil, fmt.Errorf("%w: have %d elements for dimensions %v", ErrShape, count, dims)
	}
	return img, nil
}

// NewBytes builds a Byte image over pixels. The slice is retained, not copied.
func NewBytes(dims []int, pixels []uint8) (*Image, error) {
	return newImage(Byte, dims, len(pixels), pixels)
}

// NewInt16 builds an Int16 image over pixels. The slice is retained, not copied.
func NewInt16(dims []int, pixels []int16) (*Image, error) {
	return newImage(Int16, dims, len(pixels), pixels)
}

// NewUInt16 builds a UInt16 image over pixels. The slice is retained, not copied.
func NewUInt16(dims []int, pixels []uint16) (*Image, error) {
	return newImage(UInt16, dims, len(pixels), pixels)
}

// NewInt32 builds an Int32 image over pixels. The slice is retained, not copied.
func NewInt32(dims []int, pixels []int32) (*Image, error) {
	return newImage(Int32, dims, len(pixels), pixels)
}

// NewUInt32 builds a UInt32 image over pixels. The slice is retained, not copied.
func NewUInt32(dims []int, pixels []uint32) (*Image, error) {
	return newImage(UInt32, dims, len(pixels), pixels)
}

// NewDouble builds a Double image over pixels. The slice is retained, not copied.
func NewDouble(dims []int, pixels []float64) (*Image, error) {
	return newImage(Double, dims, len(pixels), pixels)
}

// ElementType returns the declared element type.
func (img *Image) ElementType() ElementType { return img.elemType }

// Rank returns 2 or 3.
func (img *Image) Rank() int { return img.rank }

// Dims returns the per-axis sizes, length equal to Rank.
func (img *Image) Dims() []int {
	dims := make([]int, img.rank)
	copy(dims, img.dims[:img.rank])
	return dims
}

// ElementCount returns the product of the dimensions.
func (img *Image) ElementCount() int {
	n := img.dims[0] * img.dims[1]
	if img.rank == 3 {
		n *= img.dims[2]
	}
	return n
}

// Int32s returns the backing buffer if this is an Int32 image.
func (img *Image) Int32s() ([]int32, bool) {
	s, ok := img.data.([]int32)
	return s, ok
}

// Bytes returns the backing buffer if this is a Byte image.
func (img *Image) Bytes() ([]uint8, bool) {
	s, ok := img.data.([]uint8)
	return s, ok
}

// Int16s returns the backing buffer if this is an Int16 image.
func (img *Image) Int16s() ([]int16, bool) {
	s, ok := img.data.([]int16)
	return s, ok
}

// UInt16s returns the backing buffer if this is a UInt16 image.
func (img *Image) UInt16s() ([]uint16, bool) {
	s, ok := img.data.([]uint16)
	return s, ok
}

// UInt32s returns the backing buffer if this is a UInt32 image.
func (img *Image) UInt32s() ([]uint32, bool) {
	s, ok := img.data.([]uint32)
	return s, ok
}

// Doubles returns the backing buffer if this is a Double image.
func (img *Image) Doubles() ([]float64, bool) {
	s, ok := img.data.([]float64)
	return s, ok
}

// At returns the element at the given row-major indices as a float64,
// for rank-agnostic inspection in tests and tooling.
func (img *Image) At(idx ...int) float64 {
	if len(idx) != img.rank {
		panic(fmt.Sprintf("imagebytes: At called with %d indices on rank-%d image", len(idx), img.rank))
	}
	flat := idx[0]
	for i := 1; i < img.rank; i++ {
		flat = flat*img.dims[i] + idx[i]
	}
	switch data := img.data.(type) {
	case []uint8:
		return float64(data[flat])
	case []int16:
		return float64(data[flat])
	case []uint16:
		return float64(data[flat])
	case []int32:
		return float64(data[flat])
	case []uint32:
		return float64(data[flat])
	case []float64:
		return data[flat]
	default:
		panic("imagebytes: unsupported backing buffer")
	}
}

// NestedValue converts the flat buffer into nested []any slices matching the
// image rank, the shape expected by the JSON imagearray response. This walks
// every element and is only meant for the JSON fallback path.
func (img *Image) NestedValue() any {
	if img.rank == 2 {
		rows := make([]any, img.dims[0])
		for x := 0; x < img.dims[0]; x++ {
			col := make([]any, img.dims[1])
			for y := 0; y < img.dims[1]; y++ {
				col[y] = img.element(x*img.dims[1] + y)
			}
			rows[x] = col
		}
		return rows
	}
	planeStride := img.dims[1] * img.dims[2]
	rows := make([]any, img.dims[0])
	for x := 0; x < img.dims[0]; x++ {
		col := make([]any, img.dims[1])
		for y := 0; y < img.dims[1]; y++ {
			planes := make([]any, img.dims[2])
			for z := 0; z < img.dims[2]; z++ {
				planes[z] = img.element(x*planeStride + y*img.dims[2] + z)
			}
			col[y] = planes
		}
		rows[x] = col
	}
	return rows
}

func (img *Image) element(flat int) any {
	switch data := img.data.(type) {
	case []uint8:
		return data[flat]
	case []int16:
		return data[flat]
	case []uint16:
		return data[flat]
	case []int32:
		return data[flat]
	case []uint32:
		return data[flat]
	case []float64:
		return data[flat]
	default:
		panic("imagebytes: unsupported backing buffer")
	}
}
