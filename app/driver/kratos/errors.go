package kratos

import (
	"fmt"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"school-admin-service/app/domain"
)

// transformKratosError maps Kratos API failures to domain errors. The saga
// relies on the 409 mapping: the identity store's email uniqueness is what
// turns a concurrent duplicate create into a detectable conflict.
func transformKratosError(err error, httpResp *http.Response, operation string) error {
	if httpResp != nil {
		switch httpResp.StatusCode {
		case http.StatusConflict:
			return domain.ErrDuplicateEmail
		case http.StatusNotFound:
			return domain.ErrIdentityNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.ErrUnauthenticated
		}
	}

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		body := strings.ToLower(string(kratosErr.Body()))
		if containsAny(body, []string{"already exists", "duplicate", "conflict"}) {
			return domain.ErrDuplicateEmail
		}
		if strings.Contains(body, "not found") {
			return domain.ErrIdentityNotFound
		}
	}

	return fmt.Errorf("kratos %s failed: %w", operation, err)
}

// containsAny checks if the text contains any of the given substrings
func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}
