package rest

import (
	"net/http"
	"strconv"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/labstack/echo/v4"
)

// AddNews handles POST /add-news
// @Summary Add news
// @Description Creates a news item. Only is_pinned equal to the string "true" pins it.
// @Tags news
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body rest.AddNewsRequest true "News"
// @Success 200 {object} rest.StatusResponse
// @Failure 400,500 {object} rest.StatusResponse
// @Router /add-news [post]
func (h *Handler) AddNews(c echo.Context) error {
	var req AddNewsRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	if err := h.uc.AddNews(c.Request().Context(), req.ToModel()); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: "news added"})
}

// NewsCount handles GET /get-news-count
// @Summary Get news count
// @Tags news
// @Produce json
// @Success 200 {object} rest.CountResponse
// @Failure 500 {object} rest.StatusResponse
// @Router /get-news-count [get]
func (h *Handler) NewsCount(c echo.Context) error {
	count, err := h.uc.NewsCount(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// News handles GET /get-news
// @Summary Get a page of news
// @Description Pinned news first, newest first within each group. Missing or invalid page and limit fall back to 1 and 6.
// @Tags news
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 6)"
// @Success 200 {object} rest.NewsPageResponse
// @Failure 500 {object} rest.StatusResponse
// @Router /get-news [get]
func (h *Handler) News(c echo.Context) error {
	page := newsportal.ParsePositiveInt(c.QueryParam("page"), newsportal.DefaultPage)
	limit := newsportal.ParsePositiveInt(c.QueryParam("limit"), newsportal.DefaultLimit)

	res, err := h.uc.NewsPage(c.Request().Context(), page, limit)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewsPageResponse{
		News:       Map(res.News, NewNews),
		TotalPages: res.TotalPages,
	})
}

// DeleteNews handles DELETE /delete-news/:id
// @Summary Delete news
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.StatusResponse
// @Failure 400,500 {object} rest.StatusResponse
// @Router /delete-news/{id} [delete]
func (h *Handler) DeleteNews(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	if err := h.uc.DeleteNews(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: "news deleted"})
}

// UpdateNews handles POST /update-news/:id
// @Summary Update news text
// @Description Overwrites title, content, short and expiry. Image and pin are left alone.
// @Tags news
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "News ID"
// @Param request body rest.UpdateNewsRequest true "News text"
// @Success 200 {object} rest.StatusResponse
// @Failure 400,500 {object} rest.StatusResponse
// @Router /update-news/{id} [post]
func (h *Handler) UpdateNews(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	var req UpdateNewsRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	if err := h.uc.UpdateNews(c.Request().Context(), req.ToModel(id)); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: "news updated"})
}

// EditNews handles POST /edit-news
// @Summary Edit news
// @Description Merges the submitted fields into the stored item. Absent optional fields keep their stored value.
// @Tags news
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body rest.EditNewsRequest true "Edit"
// @Success 200 {object} rest.StatusResponse
// @Failure 400,404,500 {object} rest.StatusResponse
// @Router /edit-news [post]
func (h *Handler) EditNews(c echo.Context) error {
	var req EditNewsRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	if err := h.uc.EditNews(c.Request().Context(), req.ToModel()); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: "news edited"})
}
