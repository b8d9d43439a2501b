package api

import (
	"net/http"
	"strings"

	"StockCast/internal/domain/models"
	"StockCast/internal/usecase"
	xhttp "StockCast/pkg/http"
	xlogger "StockCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictHandler exposes the forecasting pipeline over HTTP. It validates
// the request, runs the pipeline once, and forwards the result or error
// verbatim.
type PredictHandler struct {
	logger    *xlogger.Logger
	predictor *usecase.Predictor
}

func NewPredictHandler(logger *xlogger.Logger, predictor *usecase.Predictor) *PredictHandler {
	return &PredictHandler{logger: logger, predictor: predictor}
}

func (h *PredictHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/predict", h.Predict)
	e.GET("/health", h.Health)
}

func (h *PredictHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if msg := xhttp.ReadAndValidateRequest(c, req); msg != "" {
		return xhttp.BadRequestResponse(c, msg)
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return xhttp.BadRequestResponse(c, "symbol is required")
	}
	days := req.Horizon()

	h.logger.Info("prediction requested",
		xlogger.String("symbol", symbol),
		xlogger.Int("days", days),
	)

	res, err := h.predictor.Predict(c.Request().Context(), symbol, days)
	if err != nil {
		h.logger.Error("prediction failed",
			xlogger.String("symbol", symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}

	h.logger.Info("prediction complete",
		xlogger.String("symbol", symbol),
		xlogger.Float64("predicted_price", res.Summary.PredictedPrice),
		xlogger.String("trend", res.Summary.Trend),
	)
	return xhttp.ResultResponse(c, res)
}

func (h *PredictHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, xhttp.HealthBody{
		Status:  "healthy",
		Service: "StockCast Prediction",
		Version: "1.0.0",
	})
}
