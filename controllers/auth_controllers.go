package controllers

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"hrm/config"
	"hrm/constants"
	"hrm/response"
	"hrm/services"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	TokenID string `json:"tokenId" binding:"required"`
}

// Login xác thực email/mật khẩu và trả về JWT
func Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := services.GetUserByEmail(input.Email)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không đúng")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không đúng")
		return
	}

	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, 60*24)
	if err != nil {
		response.ServerError(c)
		return
	}

	user.LastLoginAt = time.Now()
	config.DB.Save(&user)

	response.Success(c, gin.H{
		"accessToken": token,
		"user": gin.H{
			"id":     user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"avatar": user.Avatar,
			"role":   user.Role,
		},
	})
}

// Logout xóa cookie token phía client
func Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// AuthGoogle đăng nhập bằng Google Workspace: xác thực idtoken, tạo tài
// khoản cho lần đầu đăng nhập
func AuthGoogle(c *gin.Context) {
	var input GoogleAuthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := verifyGoogleIDToken(input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	avatar, _ := payload.Claims["picture"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	user, err := services.GetUserByEmail(email)
	if err != nil {
		user, err = services.CreateGoogleUser(name, email, avatar)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, 60*24)
	if err != nil {
		response.ServerError(c)
		return
	}

	user.LastLoginAt = time.Now()
	config.DB.Save(&user)

	response.Success(c, gin.H{
		"accessToken": token,
		"user": gin.H{
			"id":     user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"avatar": user.Avatar,
			"role":   user.Role,
		},
	})
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenID, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
