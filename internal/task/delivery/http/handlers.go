package http

import (
	"github.com/gin-gonic/gin"

	"nl-task-parser/pkg/response"
)

// Parse godoc
// @Summary     Parse a task line
// @Description Extracts title, priority, status, dates, recurrence, estimate and markers from one line of text.
// @Description User status/priority configs replace the language's built-in keywords.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task line"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Input too long"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Suggest godoc
// @Summary     Complete a vocabulary word
// @Description Returns built-in priority and status keywords of the language that start with the prefix.
// @Tags        Tasks
// @Produce     json
// @Param       prefix   query string true  "Partial word"
// @Param       language query string false "Language code (default from config)"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/suggest [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Languages godoc
// @Summary     List supported languages
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} languagesResp
// @Router      /api/v1/tasks/languages [GET]
func (h *handler) Languages(c *gin.Context) {
	response.OK(c, h.newLanguagesResp(h.uc.Languages(c.Request.Context())))
}
