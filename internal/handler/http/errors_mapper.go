// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/siterelay/internal/service"
	"github.com/MKhiriev/siterelay/internal/upstream"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrMissingPageID:         http.StatusBadRequest,
	service.ErrMissingCollectionID:   http.StatusBadRequest,
	service.ErrMissingDestination:    http.StatusBadRequest,
	service.ErrCheckoutNotConfigured: http.StatusServiceUnavailable,
	service.ErrRelayNotConfigured:    http.StatusServiceUnavailable,

	upstream.ErrInvalidDestination:    http.StatusBadRequest,
	upstream.ErrDestinationNotAllowed: http.StatusForbidden,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
