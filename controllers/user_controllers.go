package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dinebook/models"
	"dinebook/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register user baru, langsung dapat pasangan token
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,min=2"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	var existing models.User
	if err := uc.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, utils.ErrDuplicateEmail)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Hash password error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Create user error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	tokens, err := utils.GenerateTokens(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)
	utils.RespondJSON(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Login -> verifikasi password, return JWT
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidCredentials)
		return
	}

	tokens, err := utils.GenerateTokens(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful: %s (role=%s)", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Refresh menukar refresh token dengan pasangan token baru
func (uc *UserController) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	claims, err := utils.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidRefreshToken)
		return
	}

	// Pastikan user masih aktif sebelum menerbitkan token baru
	var user models.User
	if err := uc.DB.Where("id = ? AND is_active = ?", claims.UserID, true).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUserNotFound)
		return
	}

	tokens, err := utils.GenerateTokens(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tokens refreshed successfully", gin.H{
		"tokens": tokens,
	})
}

// Logout memasukkan access token ke blacklist sampai kadaluarsa
func (uc *UserController) Logout(c *gin.Context) {
	token, exists := c.Get("token")
	if exists {
		utils.BlacklistToken(token.(string))
	}
	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}

// GetProfile -> data user dari JWT
func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrUserNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile -> ubah nama/telepon sendiri
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		Name  *string `json:"name" binding:"omitempty,min=2"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrUserNotFound)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated successfully", user)
}

// GetAllUsers -> khusus admin
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All users", users)
}
