package googlesheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

// classifyError folds a transport error into the error kinds callers branch
// on. 404 and 403 both become not-found: a spreadsheet the service account
// cannot see is indistinguishable from one that does not exist.
func classifyError(err error, id domain.SpreadsheetID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound, http.StatusForbidden:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: request rejected (HTTP 401)", domain.ErrAuthentication)
		default:
			return fmt.Errorf("%w: HTTP %d: %s", domain.ErrAPI, apiErr.Code, apiErr.Message)
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrAPI, err)
}
