package youtube

import (
	"errors"
	"strings"

	"trending-board/domain/apperrors"

	"google.golang.org/api/googleapi"
)

// reasonParams maps API rejection reasons to the request parameter that
// caused them, so the boundary can name the offending input.
var reasonParams = map[string]string{
	"invalidRegionCode":      "regionCode",
	"invalidVideoCategoryId": "videoCategoryId",
	"videoCategoryNotFound":  "videoCategoryId",
	"invalidMaxResults":      "maxResults",
	"invalidChannelId":       "id",
}

// classify converts a raw API/transport failure into the typed taxonomy.
func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		reason := firstReason(gerr)
		switch gerr.Code {
		case 403, 429:
			return &apperrors.QuotaError{Reason: reason, Err: err}
		case 400, 404:
			param := reasonParams[reason]
			if param == "" {
				param = "request"
			}
			return &apperrors.ParameterError{Param: param, Reason: gerr.Message, Err: err}
		}
		return &apperrors.TransportError{Op: op, Err: err}
	}

	// Anything that is not an API-level rejection is a transport problem:
	// timeouts, DNS failures, resets, cancelled contexts.
	return &apperrors.TransportError{Op: op, Err: err}
}

func firstReason(gerr *googleapi.Error) string {
	for _, item := range gerr.Errors {
		if item.Reason != "" {
			return item.Reason
		}
	}
	// Fall back to the HTTP-level message keyword when the reason list is empty.
	if strings.Contains(strings.ToLower(gerr.Message), "quota") {
		return "quotaExceeded"
	}
	return "unknown"
}
