package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/airbean/order-system/internal/api/metrics"
	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
	"github.com/airbean/order-system/internal/core/service"
)

// CampaignHandler handles HTTP requests for price campaigns. All routes are
// admin-gated by the router.
type CampaignHandler struct {
	service ports.CampaignService
}

func NewCampaignHandler(service ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// Create handles POST /campaigns.
//
// A campaign referencing unknown products is a client error (400) with the
// distinct missing ids enumerated; a catalog-store failure during the check
// is a retryable server error (500) and is never reported as "invalid".
//
// @Summary      Create a price campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCampaignRequest  true  "Campaign details"
// @Success      201   {object}  createCampaignResponse
// @Failure      400   {object}  missingProductsResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /campaigns [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := c.Get("username").(string)
	campaign, err := h.service.CreateCampaign(c.Request().Context(), ports.CreateCampaignInput{
		ProductIDs: req.ProductIDs,
		Price:      req.Price,
		Actor:      actor,
	})
	if err != nil {
		var missing *service.MissingProductsError
		if errors.As(err, &missing) {
			metrics.CampaignValidationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, missingProductsResponse{
				Error:      "one or more products do not exist",
				MissingIDs: missing.MissingIDs,
			})
		}
		if errors.Is(err, domain.ErrValidationUnavailable) {
			metrics.CampaignValidationsTotal.WithLabelValues("unavailable").Inc()
		}
		return err // remaining errors map centrally
	}

	metrics.CampaignValidationsTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusCreated, createCampaignResponse{
		Message: "campaign created",
		Campaign: campaignResponse{
			ID:         campaign.ID,
			ProductIDs: campaign.ProductIDs,
			Price:      campaign.Price,
			CreatedAt:  campaign.CreatedAt.UTC(),
		},
	})
}

// List handles GET /campaigns.
//
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   campaignResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /campaigns [get]
func (h *CampaignHandler) List(c echo.Context) error {
	campaigns, err := h.service.ListCampaigns(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]campaignResponse, len(campaigns))
	for i, cp := range campaigns {
		out[i] = campaignResponse{
			ID:         cp.ID,
			ProductIDs: cp.ProductIDs,
			Price:      cp.Price,
			CreatedAt:  cp.CreatedAt.UTC(),
		}
	}
	return c.JSON(http.StatusOK, out)
}
