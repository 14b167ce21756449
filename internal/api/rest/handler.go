package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/api/rest/dto"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/resolver"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// SearchCoins finds cataloged coins by symbol, name or slug
	// GET /api/v1/coins?query=<text>
	SearchCoins(c *gin.Context)

	// GetHistorical returns quote series for up to ten coins
	// GET /api/v1/coins/historical?identifiers=<id1>,<id2>&interval=<interval>&start=<rfc3339>&end=<rfc3339>
	GetHistorical(c *gin.Context)

	// GetLatest passes the provider's current quotes through
	// GET /api/v1/coins/latest?ids=<id1>,<id2>
	GetLatest(c *gin.Context)

	// GetCoinsByRank lists cataloged coins by market-cap rank
	// GET /api/v1/coins/rank?start=<start>&limit=<limit>
	GetCoinsByRank(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service resolver.Service
}

// NewHandler creates a new REST API handler
func NewHandler(service resolver.Service) Handler {
	return &handler{
		service: service,
	}
}

// SearchCoins finds cataloged coins matching the query parameter
func (h *handler) SearchCoins(c *gin.Context) {
	query := c.Query("query")

	coins, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CoinsResponse{Coins: dto.FromCoins(coins)})
}

// GetHistorical returns each requested coin with its quote series
func (h *handler) GetHistorical(c *gin.Context) {
	params, err := ParseHistoricalQuery(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	histories, err := h.service.Historical(c.Request.Context(), params.IDs, params.Interval, params.Start, params.End)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoricalResponse{Data: dto.FromHistories(histories)})
}

// GetLatest passes the provider's current quotes through unmodified
func (h *handler) GetLatest(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	resp, err := h.service.LatestByIDs(c.Request.Context(), ids)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCoinsByRank lists cataloged coins ordered by rank
func (h *handler) GetCoinsByRank(c *gin.Context) {
	params, err := ParseRankQuery(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	coins, err := h.service.CoinsByRank(c.Request.Context(), params.Start, params.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CoinsResponse{Coins: dto.FromCoins(coins)})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
