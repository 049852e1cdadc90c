package errors

import "net/http"

var (
	ErrPharmacyNotFound = New(
		"PHARMACY_NOT_FOUND",
		"Pharmacy not found",
		http.StatusNotFound,
	)

	ErrInvalidPharmacyID = New(
		"INVALID_PHARMACY_ID",
		"Invalid pharmacy ID",
		http.StatusBadRequest,
	)

	ErrInvalidReviewID = New(
		"INVALID_REVIEW_ID",
		"Invalid review ID",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided, expected 'lat,lng'",
		http.StatusBadRequest,
	)

	ErrInvalidCursor = New(
		"INVALID_CURSOR",
		"Both k and uk must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidReview = New(
		"INVALID_REVIEW",
		"Review failed validation",
		http.StatusBadRequest,
	)

	ErrReviewNotSaved = New(
		"REVIEW_NOT_SAVED",
		"Review was not accepted by the pharmacy API",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
