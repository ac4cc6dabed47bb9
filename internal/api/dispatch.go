package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/astrogrid/alpaca-core/internal/ascom"
	"github.com/astrogrid/alpaca-core/internal/device"
	"github.com/astrogrid/alpaca-core/internal/imagebytes"
)

// actionKey addresses one entry in an action table: the lower-case action
// name plus whether it is the PUT (setter/command) form.
type actionKey struct {
	name string
	put  bool
}

// actionHandler invokes one device operation. A nil value result means the
// operation carries no Value field (setters and commands).
type actionHandler func(ctx context.Context, d device.Device, p *Params) (any, error)

// actionTables maps each device category to its capability actions. Common
// actions shared by every category live in commonActions.
var actionTables = map[device.Type]map[actionKey]actionHandler{
	device.TypeCamera:              cameraActions,
	device.TypeCoverCalibrator:     coverCalibratorActions,
	device.TypeDome:                domeActions,
	device.TypeFilterWheel:         filterWheelActions,
	device.TypeFocuser:             focuserActions,
	device.TypeObservingConditions: observingConditionsActions,
	device.TypeRotator:             rotatorActions,
	device.TypeSafetyMonitor:       safetyMonitorActions,
	device.TypeSwitch:              switchActions,
	device.TypeTelescope:           telescopeActions,
}

// lookupAction resolves an action against the category table, falling back
// to the common table.
func lookupAction(t device.Type, key actionKey) actionHandler {
	if h, ok := actionTables[t][key]; ok {
		return h
	}
	return commonActions[key]
}

// handleDeviceRequest routes one /api/v1/{type}/{number}/{action} call.
//
// Everything that fails before a device method runs (bad path segments,
// unconfigured device, unknown action, unreadable body) is HTTP 400 plain
// text. Once a device is resolved the reply is always a 200 envelope, with
// device failures carried in ErrorNumber/ErrorMessage.
func (s *Server) handleDeviceRequest(w http.ResponseWriter, r *http.Request) {
	t, ok := device.ParseType(chi.URLParam(r, "deviceType"))
	if !ok {
		writeBadRequest(w, "unknown device type "+chi.URLParam(r, "deviceType"))
		return
	}

	numberStr := chi.URLParam(r, "deviceNumber")
	number, err := strconv.ParseUint(numberStr, 10, 32)
	if err != nil {
		writeBadRequest(w, "invalid device number "+numberStr)
		return
	}

	action := strings.ToLower(chi.URLParam(r, "action"))
	put := r.Method == http.MethodPut
	handler := lookupAction(t, actionKey{name: action, put: put})
	if handler == nil {
		writeBadRequest(w, "unknown action "+action+" for "+string(t))
		return
	}

	entry, ok := s.registry.Lookup(t, uint32(number))
	if !ok {
		writeBadRequest(w, "no configured "+string(t)+" with device number "+numberStr)
		return
	}

	params, err := parseParams(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	clientTxn := params.ClientTransactionID()
	serverTxn := s.nextTransactionID()

	// imagearray negotiates the binary encoding via the Accept header, so
	// both its success and error paths may leave the JSON envelope.
	binaryImage := imageAction(t, action, put) &&
		acceptsImageBytes(r.Header.Get("Accept"))
	txn := imagebytes.Transaction{
		ClientTransactionID: clientTxn,
		ServerTransactionID: serverTxn,
	}

	value, err := invoke(r.Context(), handler, entry.Driver, params)
	if err != nil {
		ascomErr := ascom.AsError(err)
		s.logger.Debug("device error",
			"type", string(t),
			"number", number,
			"action", action,
			"error_number", ascomErr.Number,
			"error", ascomErr.Message,
		)
		if binaryImage {
			w.Header().Set("Content-Type", imagebytes.ContentType)
			//nolint:errcheck // Best-effort write to response
			w.Write(imagebytes.EncodeError(ascomErr, txn))
			return
		}
		writeASCOMError(w, clientTxn, serverTxn, ascomErr)
		return
	}

	if img, ok := value.(*imagebytes.Image); ok {
		s.writeImage(w, img, txn, binaryImage)
		return
	}
	if value == nil {
		writeOK(w, clientTxn, serverTxn)
		return
	}
	writeValue(w, clientTxn, serverTxn, value)
}

// acceptsImageBytes parses the Accept header's media ranges and reports
// whether the client asked for the binary image encoding. The media type
// must be named explicitly with a non-zero quality; wildcards keep the
// JSON form, which every client understands.
func acceptsImageBytes(accept string) bool {
	for _, mediaRange := range strings.Split(accept, ",") {
		parts := strings.Split(mediaRange, ";")
		if !strings.EqualFold(strings.TrimSpace(parts[0]), imagebytes.ContentType) {
			continue
		}
		for _, param := range parts[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && q <= 0 {
				return false
			}
		}
		return true
	}
	return false
}

// imageAction reports whether this action can negotiate the binary image
// encoding.
func imageAction(t device.Type, action string, put bool) bool {
	if t != device.TypeCamera || put {
		return false
	}
	return action == "imagearray" || action == "imagearrayvariant"
}

// writeImage writes a captured frame, binary when negotiated and as the
// nested JSON array form otherwise.
func (s *Server) writeImage(w http.ResponseWriter, img *imagebytes.Image, txn imagebytes.Transaction, binary bool) {
	if binary {
		w.Header().Set("Content-Type", imagebytes.ContentType)
		//nolint:errcheck // Best-effort write to response
		w.Write(imagebytes.Encode(img, txn))
		return
	}
	writeJSON(w, http.StatusOK, imageEnvelope{
		envelope: newEnvelope(txn.ClientTransactionID, txn.ServerTransactionID),
		Type:     int32(img.ElementType()),
		Rank:     int32(img.Rank()),
		Value:    img.NestedValue(),
	})
}

// invoke runs a device handler, converting panics into the catch-all
// protocol error so a faulty driver cannot take down the request path.
func invoke(ctx context.Context, h actionHandler, d device.Device, p *Params) (value any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = ascom.NewUnspecified("device driver panic: %v", rec)
		}
	}()
	return h(ctx, d, p)
}
