package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// techniqueCall is the service invocation a handler performs after its
// request has been decoded and validated.
type techniqueCall func() (*prompting.TechniqueResult, error)

// handleTechnique runs the shared endpoint flow: decode, validate, invoke,
// and wrap the result in the envelope. failCode is the technique-specific
// error code used when the failure isn't a rate limit or timeout.
func handleTechnique(
	w http.ResponseWriter,
	r *http.Request,
	v *validator.Validate,
	req any,
	failCode string,
	call techniqueCall,
) {
	if err := shared.DecodeJSON(r, req); err != nil {
		respondDecodeError(w, r, err)
		return
	}

	if err := v.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Request validation failed",
			map[string]any{"validation_errors": ValidationDetails(err)})
		return
	}

	result, err := call()
	if err != nil {
		status, code := MapGenerationError(err, failCode)
		shared.RespondWithErrorAndLog(w, r, status, code, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, result,
		result.Technique+" completed successfully")
}
