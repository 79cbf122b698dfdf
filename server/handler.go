package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/randalmurphal/promptpager/processor"
)

// Error codes returned in error bodies.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeInputTooLarge    = "input_too_large"
	CodeGenerationFailed = "generation_failed"
	CodeInternal         = "internal_error"
)

// ProcessRequest is the body of POST /v1/process.
type ProcessRequest struct {
	Text *string `json:"text" binding:"required"`
}

// ProcessResponse is the success body of POST /v1/process.
type ProcessResponse struct {
	Pages     []string `json:"pages"`
	PageCount int      `json:"page_count"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Limit    int    `json:"limit,omitempty"`
	Estimate int    `json:"estimate,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) process(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes)

	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		processErrors.WithLabelValues(CodeInvalidRequest).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: CodeInvalidRequest, Message: err.Error()})
		return
	}

	pages, err := s.proc.Process(c.Request.Context(), *req.Text)
	if err != nil {
		status, body := errorResponse(err)
		processErrors.WithLabelValues(body.Code).Inc()
		_ = c.Error(err)
		c.JSON(status, body)
		return
	}

	if pages == nil {
		pages = []string{}
	}
	processPages.Observe(float64(len(pages)))
	c.JSON(http.StatusOK, ProcessResponse{Pages: pages, PageCount: len(pages)})
}

// errorResponse maps processor errors onto HTTP statuses.
func errorResponse(err error) (int, ErrorResponse) {
	var tooLarge *processor.InputTooLargeError
	var genErr *processor.GenerationFailedError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, ErrorResponse{
			Code:     CodeInputTooLarge,
			Message:  err.Error(),
			Limit:    tooLarge.Limit,
			Estimate: tooLarge.Estimate,
		}
	case errors.As(err, &genErr):
		return http.StatusBadGateway, ErrorResponse{Code: CodeGenerationFailed, Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: CodeInternal, Message: "internal server error"}
	}
}
