package imagebytes

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

func TestRoundTripInt32Rank2(t *testing.T) {
	pixels := []int32{10, 20, 30, 40, 50, 60}
	img, err := NewInt32([]int{2, 3}, pixels)
	if err != nil {
		t.Fatalf("NewInt32: %v", err)
	}

	frame := Encode(img, Transaction{ClientTransactionID: 42, ServerTransactionID: 7})

	decoded, txn, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if txn.ClientTransactionID != 42 || txn.ServerTransactionID != 7 {
		t.Errorf("transaction = %+v, want {42 7}", txn)
	}
	if decoded.ElementType() != Int32 {
		t.Errorf("element type = %s, want int32", decoded.ElementType())
	}
	if decoded.Rank() != 2 {
		t.Errorf("rank = %d, want 2", decoded.Rank())
	}
	got, ok := decoded.Int32s()
	if !ok {
		t.Fatal("expected int32 backing buffer")
	}
	for i, v := range pixels {
		if got[i] != v {
			t.Errorf("pixel %d = %d, want %d", i, got[i], v)
		}
	}
}

func TestRoundTripAllTypes(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Image, error)
	}{
		{"byte", func() (*Image, error) { return NewBytes([]int{2, 2}, []uint8{1, 2, 3, 255}) }},
		{"int16", func() (*Image, error) { return NewInt16([]int{2, 2}, []int16{-1, 2, -3, 32767}) }},
		{"uint16", func() (*Image, error) { return NewUInt16([]int{2, 2}, []uint16{1, 2, 3, 65535}) }},
		{"uint32", func() (*Image, error) { return NewUInt32([]int{2, 2}, []uint32{1, 2, 3, 1 << 31}) }},
		{"double", func() (*Image, error) { return NewDouble([]int{2, 2}, []float64{0.5, -1.25, 3e8, 0}) }},
		{"rank3", func() (*Image, error) {
			return NewInt32([]int{2, 2, 3}, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.make()
			if err != nil {
				t.Fatalf("building image: %v", err)
			}
			decoded, _, err := Decode(Encode(img, Transaction{}))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if decoded.ElementType() != img.ElementType() {
				t.Errorf("element type = %s, want %s", decoded.ElementType(), img.ElementType())
			}
			if decoded.Rank() != img.Rank() {
				t.Errorf("rank = %d, want %d", decoded.Rank(), img.Rank())
			}
			wantDims := img.Dims()
			gotDims := decoded.Dims()
			for i := range wantDims {
				if gotDims[i] != wantDims[i] {
					t.Errorf("dim %d = %d, want %d", i, gotDims[i], wantDims[i])
				}
			}
			idx := make([]int, img.Rank())
			for i := 0; i < img.ElementCount(); i++ {
				if decoded.At(idx...) != img.At(idx...) {
					t.Errorf("element %v = %v, want %v", idx, decoded.At(idx...), img.At(idx...))
				}
				for d := img.Rank() - 1; d >= 0; d-- {
					idx[d]++
					if idx[d] < wantDims[d] {
						break
					}
					idx[d] = 0
				}
			}
		})
	}
}

func TestNewRejectsShapeMismatch(t *testing.T) {
	if _, err := NewInt32([]int{2, 3}, make([]int32, 5)); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
	if _, err := NewInt32([]int{2, 3, 3}, make([]int32, 19)); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
	if _, err := NewInt32([]int{6}, make([]int32, 6)); err == nil {
		t.Error("expected rank-1 rejection")
	}
	if _, err := NewInt32([]int{0, 3}, nil); err == nil {
		t.Error("expected zero-dimension rejection")
	}
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	img, err := NewInt32([]int{4, 4}, make([]int32, 16))
	if err != nil {
		t.Fatalf("NewInt32: %v", err)
	}
	frame := Encode(img, Transaction{})

	if _, _, err := Decode(frame[:len(frame)-4]); !errors.Is(err, ErrShape) {
		t.Errorf("truncated payload: expected ErrShape, got %v", err)
	}

	padded := append(append([]byte(nil), frame...), 0, 0, 0, 0)
	if _, _, err := Decode(padded); !errors.Is(err, ErrShape) {
		t.Errorf("padded payload: expected ErrShape, got %v", err)
	}
}

func TestDecodeRejectsShortFrame(t *testing.T) {
	if _, _, err := Decode(make([]byte, headerSize-1)); err == nil {
		t.Error("expected error for frame shorter than header")
	}
}

func TestDecodeRejectsBadMetadataVersion(t *testing.T) {
	img, _ := NewBytes([]int{1, 1}, []uint8{9})
	frame := Encode(img, Transaction{})
	binary.LittleEndian.PutUint32(frame[0:], 2)

	if _, _, err := Decode(frame); err == nil {
		t.Error("expected error for metadata version 2")
	}
}

func TestDecodeRejectsRank2WithThirdDimension(t *testing.T) {
	img, _ := NewBytes([]int{1, 2}, []uint8{1, 2})
	frame := Encode(img, Transaction{})
	// Corrupt the header: rank 2 but a non-zero Dimension3.
	binary.LittleEndian.PutUint32(frame[40:], 3)

	if _, _, err := Decode(frame); err == nil {
		t.Error("expected error for rank-2 frame with dimension 3 set")
	}
}

func TestErrorFrameRoundTrip(t *testing.T) {
	in := ascom.NewInvalidOperation("no image has been taken")
	frame := EncodeError(in, Transaction{ClientTransactionID: 3, ServerTransactionID: 4})

	img, txn, err := Decode(frame)
	if img != nil {
		t.Error("error frame should not decode into an image")
	}
	if txn.ServerTransactionID != 4 {
		t.Errorf("server transaction = %d, want 4", txn.ServerTransactionID)
	}
	var ae *ascom.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ascom.Error, got %T (%v)", err, err)
	}
	if ae.Number != ascom.CodeInvalidOperation {
		t.Errorf("error number = %#x, want %#x", ae.Number, ascom.CodeInvalidOperation)
	}
	if ae.Message != "no image has been taken" {
		t.Errorf("error message = %q", ae.Message)
	}
}

func TestDecodeWidensNarrowedTransmission(t *testing.T) {
	// An Int32 image transmitted as Int16: header says image type 2,
	// transmission type 1, payload holds 16-bit values.
	payload := []int16{-5, 0, 100, 32000}
	frame := make([]byte, headerSize+2*len(payload))
	putHeader(frame, header{
		metadataVersion:  metadataVersion,
		dataStart:        headerSize,
		imageElemType:    int32(Int32),
		transmissionType: int32(Int16),
		rank:             2,
		dim1:             2,
		dim2:             2,
	})
	for i, v := range payload {
		binary.LittleEndian.PutUint16(frame[headerSize+2*i:], uint16(v))
	}

	img, _, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.ElementType() != Int32 {
		t.Errorf("element type = %s, want int32", img.ElementType())
	}
	got, ok := img.Int32s()
	if !ok {
		t.Fatal("expected int32 backing buffer")
	}
	for i, v := range payload {
		if got[i] != int32(v) {
			t.Errorf("pixel %d = %d, want %d", i, got[i], v)
		}
	}
}

func TestNestedValueRank3(t *testing.T) {
	img, err := NewInt32([]int{1, 2, 3}, []int32{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewInt32: %v", err)
	}
	rows, ok := img.NestedValue().([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("expected 1 row, got %#v", rows)
	}
	cols := rows[0].([]any)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	planes := cols[1].([]any)
	if len(planes) != 3 {
		t.Fatalf("expected 3 planes, got %d", len(planes))
	}
	if planes[2].(int32) != 6 {
		t.Errorf("last element = %v, want 6", planes[2])
	}
}
