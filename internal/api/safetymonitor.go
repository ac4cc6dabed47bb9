package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

var safetyMonitorActions = map[actionKey]actionHandler{
	{"issafe", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.SafetyMonitor).IsSafe(ctx)
	},
}
