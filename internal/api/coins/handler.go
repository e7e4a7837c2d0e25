package coins

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"quarters-app/internal/domain/catalog"
	"quarters-app/internal/domain/collection"
	"quarters-app/internal/stats"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// GET /api/coins/quarters
// ------------------------------
func (h *Handler) ListQuarters(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	f, ok := parseListFilters(c)
	if !ok {
		return
	}

	var total int64
	if err := listQuery(h.db, userID, f).Count(&total).Error; err != nil {
		log.Printf("coins: count quarters: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	rows := []QuarterRow{}
	err := listQuery(h.db, userID, f).
		Select(listSelect).
		Order(listOrder).
		Limit(f.Limit).
		Offset(f.offset()).
		Scan(&rows).Error
	if err != nil {
		log.Printf("coins: list quarters: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	for i := range rows {
		rows[i].Owned = rows[i].OwnedID != nil
	}

	c.JSON(http.StatusOK, ListQuartersResponse{Success: true, Quarters: rows, Total: total})
}

// parseListFilters validates the listing query parameters. Page is clamped
// to 1; a page size that is not a positive integer is a bad request.
func parseListFilters(c *gin.Context) (listFilters, bool) {
	f := listFilters{
		Search: c.Query("search"),
		Series: c.Query("series"),
		Page:   1,
		Limit:  defaultPageSize,
	}

	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 1 {
			f.Page = n
		}
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid limit parameter"})
			return listFilters{}, false
		}
		f.Limit = n
	}

	if raw := c.Query("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid year parameter"})
			return listFilters{}, false
		}
		f.Year = &n
	}

	switch c.Query("owned") {
	case "true":
		v := true
		f.Owned = &v
	case "false":
		v := false
		f.Owned = &v
	}

	return f, true
}

// ------------------------------
// POST /api/coins/quarters/:id/collect
// ------------------------------
func (h *Handler) CollectQuarter(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	quarterID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quarter id"})
		return
	}

	// The body is optional; an absent body means all defaults.
	var req CollectRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	in := req.withDefaults()

	entry := collection.CollectionEntry{
		UserID:     userID,
		QuarterID:  uint(quarterID),
		MintMark:   in.MintMark,
		Condition:  in.Condition,
		Notes:      in.Notes,
		AcquiredAt: time.Now(),
	}

	// Upsert-by-replace: collecting an already-owned quarter replaces the
	// row and resets its acquired date to now.
	err = h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "quarter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mint_mark", "condition", "notes", "acquired_date",
		}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("coins: collect quarter %d for user %d: %v", quarterID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Coin added to collection"})
}

// ------------------------------
// DELETE /api/coins/quarters/:id/collect
// ------------------------------
func (h *Handler) ReleaseQuarter(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	quarterID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quarter id"})
		return
	}

	// Deleting a quarter the user never collected is still a success.
	err = h.db.
		Where("user_id = ? AND quarter_id = ?", userID, uint(quarterID)).
		Delete(&collection.CollectionEntry{}).Error
	if err != nil {
		log.Printf("coins: release quarter %d for user %d: %v", quarterID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Coin removed from collection"})
}

// ------------------------------
// GET /api/coins/stats
// ------------------------------
func (h *Handler) GetStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	s, err := stats.ForUser(h.db, userID)
	if err != nil {
		log.Printf("coins: stats for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Success: true, Stats: s})
}

// ------------------------------
// GET /api/coins/series
// ------------------------------
func (h *Handler) ListSeries(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	var series []catalog.Series
	if err := h.db.Order("start_year, name").Find(&series).Error; err != nil {
		log.Printf("coins: list series: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "series": series})
}
