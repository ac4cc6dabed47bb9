package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/astrogrid/alpaca-core/internal/ascom"
	"github.com/astrogrid/alpaca-core/internal/device"
	"github.com/astrogrid/alpaca-core/internal/imagebytes"
)

// Camera extends Device with the imaging operations.
type Camera struct {
	*Device
}

// Camera returns a handle for a camera device.
func (c *Client) Camera(number uint32) *Camera {
	return &Camera{Device: c.Device(device.TypeCamera, number)}
}

// CameraState returns the camera's operational state.
func (cam *Camera) CameraState(ctx context.Context) (device.CameraState, error) {
	v, err := cam.getInt32(ctx, "camerastate")
	return device.CameraState(v), err
}

// ImageReady reports whether a frame is waiting to be downloaded.
func (cam *Camera) ImageReady(ctx context.Context) (bool, error) {
	return cam.getBool(ctx, "imageready")
}

// PercentCompleted reports exposure progress.
func (cam *Camera) PercentCompleted(ctx context.Context) (int32, error) {
	return cam.getInt32(ctx, "percentcompleted")
}

// StartExposure begins an exposure of the given duration in seconds.
func (cam *Camera) StartExposure(ctx context.Context, duration float64, light bool) error {
	return cam.put(ctx, "startexposure", url.Values{
		"Duration": {strconv.FormatFloat(duration, 'f', -1, 64)},
		"Light":    {formatBool(light)},
	})
}

// StopExposure ends the exposure early, keeping the data gathered so far.
func (cam *Camera) StopExposure(ctx context.Context) error {
	return cam.put(ctx, "stopexposure", url.Values{})
}

// AbortExposure discards the exposure in progress.
func (cam *Camera) AbortExposure(ctx context.Context) error {
	return cam.put(ctx, "abortexposure", url.Values{})
}

// ImageArray downloads the last captured frame.
//
// The request negotiates the binary ImageBytes encoding; a server that
// answers with JSON instead gets its nested array decoded the slow way,
// so the caller sees an Image either way.
func (cam *Camera) ImageArray(ctx context.Context) (*imagebytes.Image, error) {
	params, txn := cam.client.transactionParams()
	u := cam.client.baseURL + cam.path("imagearray") + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", imagebytes.ContentType)

	resp, err := cam.client.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alpaca request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("alpaca server rejected request: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), imagebytes.ContentType) {
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading image frame: %w", err)
		}
		img, rxTxn, err := imagebytes.Decode(payload)
		if err != nil {
			return nil, err
		}
		if rxTxn.ClientTransactionID != txn {
			cam.client.logger.Warn("transaction ID echo mismatch",
				"sent", txn,
				"received", rxTxn.ClientTransactionID,
				"url", req.URL.Path,
			)
		}
		return img, nil
	}

	return decodeJSONImage(resp.Body)
}

// jsonImage is the JSON fallback shape for imagearray.
type jsonImage struct {
	ErrorNumber  int32           `json:"ErrorNumber"`
	ErrorMessage string          `json:"ErrorMessage"`
	Type         int32           `json:"Type"`
	Rank         int32           `json:"Rank"`
	Value        json.RawMessage `json:"Value"`
}

// decodeJSONImage rebuilds an Image from the nested JSON array form.
// Integer element types land in an Int32 image, Double in a Double one.
func decodeJSONImage(r io.Reader) (*imagebytes.Image, error) {
	var env jsonImage
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("parsing image response: %w", err)
	}
	if env.ErrorNumber != 0 {
		return nil, &ascom.Error{Number: env.ErrorNumber, Message: env.ErrorMessage}
	}

	var nested any
	if err := json.Unmarshal(env.Value, &nested); err != nil {
		return nil, fmt.Errorf("parsing image array: %w", err)
	}

	dims, flat, err := flattenNested(nested)
	if err != nil {
		return nil, err
	}
	if len(dims) != int(env.Rank) {
		return nil, fmt.Errorf("image rank %d does not match %d nesting levels", env.Rank, len(dims))
	}

	if imagebytes.ElementType(env.Type) == imagebytes.Double {
		return imagebytes.NewDouble(dims, flat)
	}
	pixels := make([]int32, len(flat))
	for i, v := range flat {
		pixels[i] = int32(v)
	}
	return imagebytes.NewInt32(dims, pixels)
}

// flattenNested walks a nested JSON array row-major, returning the
// dimensions and the flattened elements. Ragged arrays are rejected.
func flattenNested(v any) ([]int, []float64, error) {
	var (
		dims []int
		flat []float64
	)

	var walk func(v any, depth int) error
	walk = func(v any, depth int) error {
		switch node := v.(type) {
		case []any:
			if depth == len(dims) {
				dims = append(dims, len(node))
			} else if dims[depth] != len(node) {
				return fmt.Errorf("ragged image array at depth %d", depth)
			}
			for _, child := range node {
				if err := walk(child, depth+1); err != nil {
					return err
				}
			}
			return nil
		case float64:
			if depth != len(dims) {
				return fmt.Errorf("scalar at depth %d, expected %d nesting levels", depth, len(dims))
			}
			flat = append(flat, node)
			return nil
		default:
			return fmt.Errorf("unexpected element %T in image array", v)
		}
	}

	if err := walk(v, 0); err != nil {
		return nil, nil, err
	}
	if len(dims) == 0 {
		return nil, nil, fmt.Errorf("image array is not an array")
	}
	return dims, flat, nil
}
