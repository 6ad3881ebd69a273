package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqpresets/internal/equalizer"
	"github.com/RMahshie/eqpresets/internal/repository"
)

// toHTTPError maps store and model errors onto huma status errors
func toHTTPError(msg string, err error) error {
	switch {
	case errors.Is(err, equalizer.ErrInvalid):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, repository.ErrStorageUnavailable):
		log.Error().Err(err).Msg(msg)
		return huma.Error503ServiceUnavailable(msg, err)
	case errors.Is(err, repository.ErrStorageCorrupt):
		log.Error().Err(err).Msg(msg)
		return huma.Error500InternalServerError(msg+": preset file is corrupt", err)
	default:
		log.Error().Err(err).Msg(msg)
		return huma.Error500InternalServerError(msg, err)
	}
}
