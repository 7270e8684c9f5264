package httptransport

import (
	"errors"

	"github.com/huzelnut/crypto/internal/dates"
	"github.com/huzelnut/crypto/internal/ports/errcode"
	"github.com/huzelnut/crypto/internal/service/prices"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, prices.ErrNoDataFound):
		return errcode.NoDataFound
	case errors.Is(err, dates.ErrInvalidDate):
		return errcode.InvalidDate
	default:
		return errcode.Internal
	}
}
