package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/astrogrid/alpaca-core/internal/ascom"
	"github.com/astrogrid/alpaca-core/internal/device"
	"github.com/astrogrid/alpaca-core/internal/imagebytes"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/config"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/logging"
)

func testLogger() *logging.Logger {
	return logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stderr"}, "test")
}

// newTestClient wires a Client at an httptest server running handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := New(ts.URL, 77, testLogger())
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return c
}

// writeEnvelope writes a success envelope echoing the request's
// transaction ID.
func writeEnvelope(w http.ResponseWriter, r *http.Request, value any) {
	ctid := r.FormValue("ClientTransactionID")
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // test server
	fmt.Fprintf(w, `{"ClientTransactionID":%s,"ServerTransactionID":10,"ErrorNumber":0,"ErrorMessage":""`, ctid)
	if value != nil {
		data, _ := json.Marshal(value)
		//nolint:errcheck // test server
		fmt.Fprintf(w, `,"Value":%s`, data)
	}
	//nolint:errcheck // test server
	fmt.Fprint(w, "}")
}

func TestGetterDecodesValue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/camera/0/connected" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("ClientID") != "77" {
			t.Errorf("ClientID = %q, want 77", r.URL.Query().Get("ClientID"))
		}
		writeEnvelope(w, r, true)
	})

	connected, err := c.Device(device.TypeCamera, 0).Connected(context.Background())
	if err != nil {
		t.Fatalf("Connected: %v", err)
	}
	if !connected {
		t.Error("Connected = false, want true")
	}
}

func TestClientTransactionIDsIncrement(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query().Get("ClientTransactionID"))
		writeEnvelope(w, r, false)
	})

	d := c.Device(device.TypeCamera, 0)
	for i := 0; i < 3; i++ {
		if _, err := d.Connected(context.Background()); err != nil {
			t.Fatalf("Connected: %v", err)
		}
	}

	want := []string{"1", "2", "3"}
	for i, w := range want {
		if seen[i] != w {
			t.Errorf("transaction %d = %s, want %s", i, seen[i], w)
		}
	}
}

func TestProtocolErrorSurfacesAsASCOMError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // test server
		fmt.Fprintf(w, `{"ClientTransactionID":1,"ServerTransactionID":2,"ErrorNumber":%d,"ErrorMessage":"not connected"}`, ascom.CodeNotConnected)
	})

	_, err := c.Device(device.TypeTelescope, 0).Name(context.Background())
	var ascomErr *ascom.Error
	if !errors.As(err, &ascomErr) {
		t.Fatalf("expected *ascom.Error, got %v", err)
	}
	if !errors.Is(err, ascom.ErrNotConnected) {
		t.Errorf("error %v should match ErrNotConnected", err)
	}
}

func TestTransportErrorIsNotASCOMError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown action", http.StatusBadRequest)
	})

	_, err := c.Device(device.TypeCamera, 0).Connected(context.Background())
	if err == nil {
		t.Fatal("expected error for HTTP 400")
	}
	var ascomErr *ascom.Error
	if errors.As(err, &ascomErr) {
		t.Errorf("HTTP 400 must not surface as a protocol error, got %v", ascomErr)
	}
}

func TestSetConnectedSendsFormBody(t *testing.T) {
	var gotMethod, gotConnected string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		gotConnected = r.PostForm.Get("Connected")
		writeEnvelope(w, r, nil)
	})

	if err := c.Device(device.TypeCamera, 0).SetConnected(context.Background(), true); err != nil {
		t.Fatalf("SetConnected: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotConnected != "true" {
		t.Errorf("Connected form value = %q, want true", gotConnected)
	}
}

func TestImageArrayBinary(t *testing.T) {
	frame, err := imagebytes.NewInt16([]int{2, 2}, []int16{-5, 6, 7, 8})
	if err != nil {
		t.Fatalf("building frame: %v", err)
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != imagebytes.ContentType {
			t.Errorf("Accept = %q, want %q", r.Header.Get("Accept"), imagebytes.ContentType)
		}
		w.Header().Set("Content-Type", imagebytes.ContentType)
		//nolint:errcheck // test server
		w.Write(imagebytes.Encode(frame, imagebytes.Transaction{ClientTransactionID: 1, ServerTransactionID: 2}))
	})

	img, err := c.Camera(0).ImageArray(context.Background())
	if err != nil {
		t.Fatalf("ImageArray: %v", err)
	}
	if img.ElementType() != imagebytes.Int16 || img.ElementCount() != 4 {
		t.Errorf("decoded %s image with %d elements", img.ElementType(), img.ElementCount())
	}
	if img.At(0, 0) != -5 {
		t.Errorf("pixel (0,0) = %v, want -5", img.At(0, 0))
	}
}

func TestImageArrayJSONFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // test server
		fmt.Fprint(w, `{"ClientTransactionID":1,"ServerTransactionID":2,"ErrorNumber":0,"ErrorMessage":"","Type":2,"Rank":2,"Value":[[1,2,3],[4,5,6]]}`)
	})

	img, err := c.Camera(0).ImageArray(context.Background())
	if err != nil {
		t.Fatalf("ImageArray: %v", err)
	}
	if img.Rank() != 2 || img.ElementCount() != 6 {
		t.Fatalf("decoded rank %d, count %d", img.Rank(), img.ElementCount())
	}
	dims := img.Dims()
	if dims[0] != 2 || dims[1] != 3 {
		t.Errorf("dims = %v, want [2 3]", dims)
	}
	if img.At(1, 2) != 6 {
		t.Errorf("pixel (1,2) = %v, want 6", img.At(1, 2))
	}
}

func TestImageArrayErrorFrame(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", imagebytes.ContentType)
		//nolint:errcheck // test server
		w.Write(imagebytes.EncodeError(ascom.NewInvalidOperation("no image"), imagebytes.Transaction{ClientTransactionID: 1}))
	})

	_, err := c.Camera(0).ImageArray(context.Background())
	if !errors.Is(err, ascom.ErrInvalidOperation) {
		t.Errorf("error = %v, want InvalidOperation", err)
	}
}

func TestFlattenNestedRejectsRagged(t *testing.T) {
	var nested any
	if err := json.Unmarshal([]byte(`[[1,2],[3]]`), &nested); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, _, err := flattenNested(nested); err == nil {
		t.Error("expected error for ragged array")
	}
}

func TestManagementCalls(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/management/apiversions":
			writeEnvelope(w, r, []int{1})
		case "/management/v1/configureddevices":
			writeEnvelope(w, r, []ConfiguredDevice{
				{DeviceName: "Cam", DeviceType: "Camera", DeviceNumber: 0, UniqueID: "abc"},
			})
		default:
			http.Error(w, "bad route", http.StatusBadRequest)
		}
	})

	versions, err := c.APIVersions(context.Background())
	if err != nil || len(versions) != 1 || versions[0] != 1 {
		t.Errorf("APIVersions = %v, %v", versions, err)
	}

	devices, err := c.ConfiguredDevices(context.Background())
	if err != nil {
		t.Fatalf("ConfiguredDevices: %v", err)
	}
	if len(devices) != 1 || devices[0].DeviceType != "Camera" {
		t.Errorf("devices = %v", devices)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	if _, err := New("ftp://example.com", 1, testLogger()); err == nil {
		t.Error("expected error for non-http scheme")
	}
}
