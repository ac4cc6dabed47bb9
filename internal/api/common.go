package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

// commonActions are the identity and raw-command operations every device
// category supports.
var commonActions = map[actionKey]actionHandler{
	{"connected", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.Connected(ctx)
	},
	{"connected", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		connected, err := p.Bool("Connected")
		if err != nil {
			return nil, err
		}
		return nil, d.SetConnected(ctx, connected)
	},
	{"description", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.Description(ctx)
	},
	{"driverinfo", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.DriverInfo(ctx)
	},
	{"driverversion", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.DriverVersion(ctx)
	},
	{"interfaceversion", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.InterfaceVersion(ctx)
	},
	{"name", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.Name(ctx)
	},
	{"supportedactions", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		actions, err := d.SupportedActions(ctx)
		if err != nil {
			return nil, err
		}
		if actions == nil {
			actions = []string{}
		}
		return actions, nil
	},
	{"action", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		name, err := p.String("Action")
		if err != nil {
			return nil, err
		}
		parameters, _ := p.lookup("Parameters")
		return d.Action(ctx, name, parameters)
	},
	{"commandblind", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		command, raw, err := commandParams(p)
		if err != nil {
			return nil, err
		}
		return nil, d.CommandBlind(ctx, command, raw)
	},
	{"commandbool", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		command, raw, err := commandParams(p)
		if err != nil {
			return nil, err
		}
		return d.CommandBool(ctx, command, raw)
	},
	{"commandstring", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		command, raw, err := commandParams(p)
		if err != nil {
			return nil, err
		}
		return d.CommandString(ctx, command, raw)
	},
}

// commandParams extracts the shared Command/Raw parameter pair. Raw
// defaults to false when absent.
func commandParams(p *Params) (string, bool, error) {
	command, err := p.String("Command")
	if err != nil {
		return "", false, err
	}
	raw := false
	if _, ok := p.lookup("Raw"); ok {
		raw, err = p.Bool("Raw")
		if err != nil {
			return "", false, err
		}
	}
	return command, raw, nil
}
