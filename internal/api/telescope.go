package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

// telescopeActions maps telescope capability actions onto the Telescope
// interface.
var telescopeActions = map[actionKey]actionHandler{
	{"altitude", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).Altitude(ctx)
	},
	{"athome", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).AtHome(ctx)
	},
	{"atpark", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).AtPark(ctx)
	},
	{"azimuth", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).Azimuth(ctx)
	},
	{"canfindhome", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).CanFindHome(ctx)
	},
	{"canpark", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).CanPark(ctx)
	},
	{"cansettracking", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).CanSetTracking(ctx)
	},
	{"canslew", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).CanSlew(ctx)
	},
	{"canslewasync", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).CanSlewAsync(ctx)
	},
	{"cansync", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).CanSync(ctx)
	},
	{"canunpark", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).CanUnpark(ctx)
	},
	{"declination", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).Declination(ctx)
	},
	{"rightascension", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).RightAscension(ctx)
	},
	{"siderealtime", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).SiderealTime(ctx)
	},
	{"sitelatitude", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).SiteLatitude(ctx)
	},
	{"sitelatitude", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		degrees, err := p.Float64("SiteLatitude")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Telescope).SetSiteLatitude(ctx, degrees)
	},
	{"sitelongitude", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).SiteLongitude(ctx)
	},
	{"sitelongitude", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		degrees, err := p.Float64("SiteLongitude")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Telescope).SetSiteLongitude(ctx, degrees)
	},
	{"slewing", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).Slewing(ctx)
	},
	{"targetdeclination", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).TargetDeclination(ctx)
	},
	{"targetdeclination", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		degrees, err := p.Float64("TargetDeclination")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Telescope).SetTargetDeclination(ctx, degrees)
	},
	{"targetrightascension", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).TargetRightAscension(ctx)
	},
	{"targetrightascension", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		hours, err := p.Float64("TargetRightAscension")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Telescope).SetTargetRightAscension(ctx, hours)
	},
	{"tracking", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Telescope).Tracking(ctx)
	},
	{"tracking", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		tracking, err := p.Bool("Tracking")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Telescope).SetTracking(ctx, tracking)
	},
	{"abortslew", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Telescope).AbortSlew(ctx)
	},
	{"findhome", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Telescope).FindHome(ctx)
	},
	{"park", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Telescope).Park(ctx)
	},
	{"unpark", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Telescope).Unpark(ctx)
	},
	{"slewtocoordinatesasync", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		rightAscension, declination, err := coordinateParams(p)
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Telescope).SlewToCoordinatesAsync(ctx, rightAscension, declination)
	},
	{"synctocoordinates", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		rightAscension, declination, err := coordinateParams(p)
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Telescope).SyncToCoordinates(ctx, rightAscension, declination)
	},
}

// coordinateParams extracts the RightAscension/Declination pair shared by
// the slew and sync actions.
func coordinateParams(p *Params) (rightAscension, declination float64, err error) {
	rightAscension, err = p.Float64("RightAscension")
	if err != nil {
		return 0, 0, err
	}
	declination, err = p.Float64("Declination")
	if err != nil {
		return 0, 0, err
	}
	return rightAscension, declination, nil
}
