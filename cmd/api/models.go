package main

import (
	"time"

	"starluck/internal/aspects"
	"starluck/internal/chart"
	"starluck/internal/composite"
	"starluck/internal/houses"
	"starluck/internal/transits"
	"starluck/internal/types"
)

// LocationInput is an observer position
type LocationInput struct {
	Latitude  float64 `json:"lat" example:"40.7128" doc:"Latitude in decimal degrees"`
	Longitude float64 `json:"lon" example:"-74.006" doc:"Longitude in decimal degrees, east positive"`
	Elevation float64 `json:"elevation_m,omitempty" doc:"Elevation in meters"`
}

// NatalRequest describes one birth chart
type NatalRequest struct {
	DateTimeLocal string        `json:"datetime_local" example:"1990-01-01 12:00" doc:"Local birth date and time, YYYY-MM-DD HH:MM"`
	Timezone      string        `json:"timezone,omitempty" example:"America/New_York" doc:"IANA timezone; looked up from the location when empty"`
	Location      LocationInput `json:"location"`
	HouseSystem   string        `json:"house_system,omitempty" example:"PLACIDUS" doc:"WHOLE, PLACIDUS or EQUAL"`
	Bodies        []string      `json:"bodies,omitempty" doc:"Bodies to include; Sun through Pluto and the north node when empty"`
}

type BodyOutput struct {
	Body          string  `json:"body"`
	Glyph         string  `json:"glyph"`
	Longitude     float64 `json:"lon"`
	Latitude      float64 `json:"lat"`
	Speed         float64 `json:"speed" doc:"Degrees per day"`
	Retrograde    bool    `json:"retro"`
	Sign          string  `json:"sign"`
	DegreesInSign float64 `json:"deg"`
	House         int     `json:"house"`
}

type AnglesOutput struct {
	ASC float64 `json:"ASC"`
	MC  float64 `json:"MC"`
	DS  float64 `json:"DS"`
	IC  float64 `json:"IC"`
}

type SegmentOutput struct {
	Sign    string  `json:"sign"`
	Degrees float64 `json:"degrees"`
	Percent float64 `json:"percent"`
}

type HouseOutput struct {
	House    int             `json:"house"`
	Cusp     float64         `json:"cusp"`
	Sign     string          `json:"sign"`
	Span     float64         `json:"span"`
	Segments []SegmentOutput `json:"segments"`
}

type AspectOutput struct {
	Body1      string  `json:"p1"`
	Body2      string  `json:"p2"`
	Aspect     string  `json:"aspect"`
	Glyph      string  `json:"glyph"`
	Separation float64 `json:"separation"`
	Orb        float64 `json:"orb" doc:"Absolute deviation from the exact angle"`
	Offset     float64 `json:"off" doc:"Separation minus the exact angle"`
}

type MoonPhaseOutput struct {
	Name  string  `json:"name"`
	Angle float64 `json:"angle"`
}

type ChartLocationOutput struct {
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lon"`
	Elevation      float64 `json:"elevation_m"`
	Timezone       string  `json:"tz"`
	TimezoneLookup bool    `json:"tz_from_coordinates" doc:"True when the timezone was looked up from the coordinates"`
}

type ChartResponse struct {
	DateTimeUTC      time.Time           `json:"datetime_utc"`
	DateTimeLocal    string              `json:"datetime_local"`
	JulianDay        float64             `json:"julian_day"`
	SiderealTime     float64             `json:"lst" doc:"Local sidereal time in degrees"`
	Obliquity        float64             `json:"obliquity"`
	Location         ChartLocationOutput `json:"location"`
	HouseSystem      string              `json:"house_system"`
	Houses           []float64           `json:"houses" doc:"Cusps of houses 1 to 12"`
	HouseSigns       []HouseOutput       `json:"house_signs"`
	InterceptedSigns []string            `json:"intercepted_signs"`
	Angles           AnglesOutput        `json:"angles"`
	Planets          []BodyOutput        `json:"planets"`
	PartOfFortune    BodyOutput          `json:"part_of_fortune"`
	Aspects          []AspectOutput      `json:"aspects"`
	MoonPhase        MoonPhaseOutput     `json:"moon_phase"`
	Sect             string              `json:"sect"`
	Ephemeris        string              `json:"ephemeris"`
}

func newBodyOutput(c *chart.Chart, pos types.BodyPosition) BodyOutput {
	return BodyOutput{
		Body:          pos.Body.String(),
		Glyph:         pos.Body.Glyph(),
		Longitude:     pos.Longitude,
		Latitude:      pos.Latitude,
		Speed:         pos.Speed,
		Retrograde:    pos.Retrograde,
		Sign:          pos.Sign().String(),
		DegreesInSign: pos.DegreesInSign(),
		House:         c.Houses.HouseOf(pos.Longitude),
	}
}

func newAspectOutputs(list []aspects.Aspect) []AspectOutput {
	out := make([]AspectOutput, 0, len(list))
	for _, a := range list {
		out = append(out, AspectOutput{
			Body1:      a.Body1.String(),
			Body2:      a.Body2.String(),
			Aspect:     a.Type.String(),
			Glyph:      a.Type.Glyph(),
			Separation: a.Separation,
			Orb:        a.Orb,
			Offset:     a.Offset,
		})
	}
	return out
}

func newHouseOutputs(r houses.Result) []HouseOutput {
	cuspSigns := r.CuspSigns()
	out := make([]HouseOutput, 0, 12)
	for _, hs := range r.SignBreakdown() {
		segments := make([]SegmentOutput, 0, len(hs.Segments))
		for _, seg := range hs.Segments {
			segments = append(segments, SegmentOutput{Sign: seg.Sign.String(), Degrees: seg.Degrees, Percent: seg.Percent})
		}
		out = append(out, HouseOutput{
			House:    hs.House,
			Cusp:     r.Cusp(hs.House),
			Sign:     cuspSigns[hs.House-1].String(),
			Span:     hs.Span,
			Segments: segments,
		})
	}
	return out
}

func newChartResponse(c *chart.Chart) ChartResponse {
	frame := c.Frame
	angles := c.Houses.Angles

	planets := make([]BodyOutput, 0, len(c.Positions))
	for _, pos := range c.Positions {
		planets = append(planets, newBodyOutput(c, pos))
	}

	intercepted := make([]string, 0)
	for _, sign := range c.Houses.InterceptedSigns() {
		intercepted = append(intercepted, sign.String())
	}

	return ChartResponse{
		DateTimeUTC:   frame.Instant.UTC,
		DateTimeLocal: frame.Local.Format(time.RFC3339),
		JulianDay:     frame.Instant.JulianDay,
		SiderealTime:  frame.LST,
		Obliquity:     frame.Obliquity,
		Location: ChartLocationOutput{
			Latitude:       frame.Location.Latitude,
			Longitude:      frame.Location.Longitude,
			Elevation:      frame.Location.Elevation.Meters,
			Timezone:       frame.Timezone,
			TimezoneLookup: c.TimezoneFromCoordinates,
		},
		HouseSystem:      c.Houses.System.String(),
		Houses:           c.Houses.Cusps[:],
		HouseSigns:       newHouseOutputs(c.Houses),
		InterceptedSigns: intercepted,
		Angles:           AnglesOutput{ASC: angles.ASC, MC: angles.MC, DS: angles.DS, IC: angles.IC},
		Planets:          planets,
		PartOfFortune:    newBodyOutput(c, c.PartOfFortune),
		Aspects:          newAspectOutputs(c.Aspects),
		MoonPhase:        MoonPhaseOutput{Name: c.MoonPhase.Name, Angle: c.MoonPhase.Angle},
		Sect:             c.Sect.String(),
		Ephemeris:        c.Backend,
	}
}

type MidpointOutput struct {
	Body      string  `json:"body"`
	Longitude float64 `json:"lon"`
	Sign      string  `json:"sign"`
	Degrees   float64 `json:"deg"`
}

func newMidpointOutputs(mids []composite.Midpoint) []MidpointOutput {
	out := make([]MidpointOutput, 0, len(mids))
	for _, m := range mids {
		out = append(out, MidpointOutput{
			Body:      m.Body.String(),
			Longitude: m.Longitude,
			Sign:      types.SignOf(m.Longitude).String(),
			Degrees:   types.DegreesInSign(m.Longitude),
		})
	}
	return out
}

type TransitOutput struct {
	WhenUTC    time.Time `json:"when_utc"`
	WhenLocal  string    `json:"when_local"`
	Transit    string    `json:"transit"`
	Natal      string    `json:"natal"`
	Aspect     string    `json:"aspect"`
	Glyph      string    `json:"glyph"`
	Orb        float64   `json:"orb_diff"`
	Offset     float64   `json:"off"`
	Retrograde bool      `json:"retro"`
}

func newTransitOutputs(events []transits.Event) []TransitOutput {
	out := make([]TransitOutput, 0, len(events))
	for _, ev := range events {
		out = append(out, TransitOutput{
			WhenUTC:    ev.UTC,
			WhenLocal:  ev.Local.Format(time.RFC3339),
			Transit:    ev.Transiting.String(),
			Natal:      ev.Natal.String(),
			Aspect:     ev.Type.String(),
			Glyph:      ev.Type.Glyph(),
			Orb:        ev.Orb,
			Offset:     ev.Offset,
			Retrograde: ev.Retrograde,
		})
	}
	return out
}
