package users

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"quarters-app/internal/domain/users"
	"quarters-app/internal/stats"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// ------------------------------
// PUT /api/user/profile-visibility
// ------------------------------
func (h *Handler) UpdateProfileVisibility(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	err := h.db.Model(&users.User{}).
		Where("id = ?", userID).
		Update("profile_public", *req.IsPublic).Error
	if err != nil {
		log.Printf("users: update visibility for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile visibility updated"})
}

// ------------------------------
// GET /api/user/profile/:userId  (no authentication)
// ------------------------------
func (h *Handler) PublicProfile(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
		return
	}

	var user users.User
	if err := h.db.First(&user, uint(targetID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		log.Printf("users: load profile %d: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	// A private profile reveals nothing, not even counts.
	if !user.ProfilePublic {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Profile is private"})
		return
	}

	coll, err := ownedCollection(h.db, user.ID)
	if err != nil {
		log.Printf("users: profile collection %d: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	s, err := stats.ForUser(h.db, user.ID)
	if err != nil {
		log.Printf("users: profile stats %d: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Success: true,
		Profile: Profile{
			User: PublicUser{
				ID:        user.ID,
				Name:      user.Name,
				AvatarURL: user.AvatarURL,
			},
			Collection: coll,
			Stats:      s,
		},
	})
}
