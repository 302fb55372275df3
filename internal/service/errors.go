package service

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/walletgw/go-wallet-gateway/models"
)

// collaboratorError converts a non-2xx collaborator response into a
// *models.CollaboratorError. Bodies that already match the structural error
// contract are decoded as-is; anything else is preserved verbatim in Detail
// so the client still sees the collaborator's payload unmodified.
func collaboratorError(resp *resty.Response) error {
	body := append([]byte(nil), resp.Body()...)

	cerr := &models.CollaboratorError{}
	if err := json.Unmarshal(body, cerr); err != nil || (cerr.Code == "" && cerr.Message == "") {
		return &models.CollaboratorError{
			Code:    "collaborator_error",
			Message: http.StatusText(resp.StatusCode()),
			Detail:  body,
		}
	}

	return cerr
}

// transportError maps a failure to reach the collaborator at all (timeout,
// refused connection, DNS) into the same structural error contract, so the
// client cannot distinguish a slow collaborator from a failing one.
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &models.CollaboratorError{
			Code:    "timeout",
			Message: "collaborator call timed out",
		}
	}

	return &models.CollaboratorError{
		Code:    "unreachable",
		Message: err.Error(),
	}
}
