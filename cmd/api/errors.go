package main

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"starluck/internal/astro"
	"starluck/internal/ephemeris"
	"starluck/internal/houses"
	"starluck/internal/transits"
	"starluck/internal/types"
)

var errScanTooLarge = errors.New("transit scan exceeds the sample limit")

// toHTTPError maps engine errors to responses: malformed input is a 400,
// well-formed input the engine cannot serve is a 422. Anything else is
// logged and hidden behind a 500.
func (app *App) toHTTPError(op string, err error) error {
	switch {
	case errors.Is(err, astro.ErrInvalidTime),
		errors.Is(err, types.ErrInvalidLocation),
		errors.Is(err, types.ErrUnknownBody),
		errors.Is(err, houses.ErrUnknownSystem),
		errors.Is(err, transits.ErrInvalidScanParameters):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, houses.ErrDegenerate),
		errors.Is(err, ephemeris.ErrUnsupportedBody),
		errors.Is(err, ephemeris.ErrOutOfRange),
		errors.Is(err, errScanTooLarge):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		app.logger.Error("request failed", "operation", op, "error", err)
		return huma.Error500InternalServerError("failed to " + op)
	}
}
