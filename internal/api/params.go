package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// Params holds the request parameters for one Alpaca call.
//
// GET requests read the query string; PUT requests read the
// form-encoded body. Parameter names are case-insensitive, so keys are
// folded to lower case on parse. When a key repeats, the first value wins.
type Params struct {
	values map[string]string
}

// parseParams extracts parameters from the request per its method.
func parseParams(r *http.Request) (*Params, error) {
	var src url.Values
	switch r.Method {
	case http.MethodPut:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parsing form body: %w", err)
		}
		src = r.PostForm
	default:
		src = r.URL.Query()
	}

	values := make(map[string]string, len(src))
	for key, vals := range src {
		if len(vals) == 0 {
			continue
		}
		folded := strings.ToLower(key)
		if _, exists := values[folded]; !exists {
			values[folded] = vals[0]
		}
	}
	return &Params{values: values}, nil
}

// lookup returns the raw value for a case-insensitive parameter name.
func (p *Params) lookup(name string) (string, bool) {
	v, ok := p.values[strings.ToLower(name)]
	return v, ok
}

// String returns a required string parameter. A missing parameter is an
// InvalidValue protocol error.
func (p *Params) String(name string) (string, error) {
	v, ok := p.lookup(name)
	if !ok {
		return "", ascom.NewInvalidValue("missing parameter %s", name)
	}
	return v, nil
}

// Int32 returns a required int32 parameter.
func (p *Params) Int32(name string) (int32, error) {
	v, err := p.String(name)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.ParseInt(v, 10, 32)
	if convErr != nil {
		return 0, ascom.NewInvalidValue("parameter %s: %q is not a valid integer", name, v)
	}
	return int32(n), nil
}

// Float64 returns a required float64 parameter.
func (p *Params) Float64(name string) (float64, error) {
	v, err := p.String(name)
	if err != nil {
		return 0, err
	}
	f, convErr := strconv.ParseFloat(v, 64)
	if convErr != nil {
		return 0, ascom.NewInvalidValue("parameter %s: %q is not a valid number", name, v)
	}
	return f, nil
}

// Bool returns a required boolean parameter. Only the literals "true" and
// "false" are accepted, in any letter case.
func (p *Params) Bool(name string) (bool, error) {
	v, err := p.String(name)
	if err != nil {
		return false, err
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	default:
		return false, ascom.NewInvalidValue("parameter %s: %q is not a valid boolean", name, v)
	}
}

// ClientTransactionID returns the client's transaction ID, or 0 when the
// parameter is absent or malformed. Transaction IDs exist for log
// correlation only, so a bad value never fails the request.
func (p *Params) ClientTransactionID() uint32 {
	return p.lenientUint32("ClientTransactionID")
}

// ClientID returns the client's session ID with the same lenient parse.
func (p *Params) ClientID() uint32 {
	return p.lenientUint32("ClientID")
}

func (p *Params) lenientUint32(name string) uint32 {
	v, ok := p.lookup(name)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
