package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/internal/nutrition"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type TargetController struct {
	repo repository.NutritionTargetRepository
}

func NewTargetController(repo repository.NutritionTargetRepository) *TargetController {
	return &TargetController{repo: repo}
}

type targetRequest struct {
	UserID uint `json:"user_id"`
	nutrition.BiometricInput
}

// PreviewTargets godoc
// @Summary Preview nutrition targets
// @Description Compute calorie and macro targets from biometrics without persisting them
// @Tags targets
// @Accept json
// @Produce json
// @Param biometrics body targetRequest true "Biometric input"
// @Success 200 {object} map[string]interface{} "Targets computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid biometric input"
// @Router /targets/preview [post]
func (tc *TargetController) PreviewTargets(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	targets, err := nutrition.ComputeTargets(req.BiometricInput)
	if err != nil {
		respondTargetError(c, err)
		return
	}

	// preview keeps fractional precision
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Targets computed successfully",
		"data":    targets,
	})
}

// CreateTargets godoc
// @Summary Create nutrition targets
// @Description Compute targets from biometrics and store them for the user
// @Tags targets
// @Accept json
// @Produce json
// @Param biometrics body targetRequest true "Biometric input"
// @Success 201 {object} map[string]interface{} "Targets saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid biometric input"
// @Failure 500 {object} map[string]interface{} "Failed to save targets"
// @Router /targets [post]
func (tc *TargetController) CreateTargets(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	targets, err := nutrition.ComputeTargets(req.BiometricInput)
	if err != nil {
		respondTargetError(c, err)
		return
	}

	record := targets.Rounded(req.UserID)
	if err := tc.repo.Create(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save targets",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Targets saved successfully",
		"data":    record,
	})
}

// GetLatestTarget godoc
// @Summary Get current nutrition targets
// @Description Retrieve the most recently saved targets for a user
// @Tags targets
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Targets retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "No targets found"
// @Router /targets/user/{user_id} [get]
func (tc *TargetController) GetLatestTarget(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	target, err := tc.repo.FindLatestByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No targets found",
			"error":   "Complete onboarding to calculate targets first",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Targets retrieved successfully",
		"data":    target,
	})
}

func respondTargetError(c *gin.Context, err error) {
	var verr *nutrition.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid biometric input",
			"error":   verr.Error(),
		})
		return
	}
	if errors.Is(err, nutrition.ErrUnavailable) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Targets unavailable",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to compute targets",
		"error":   err.Error(),
	})
}
