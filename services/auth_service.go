package services

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrm/config"
	apperrors "hrm/errors"
	"hrm/models"
)

// UserInfo là phần claims nghiệp vụ nhét vào token
type UserInfo struct {
	UserID uint   `json:"userid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   int    `json:"role"`
}

// GetUserByEmail lấy user theo email
func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Tài khoản không tồn tại", err)
		}
		return user, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn tài khoản", err)
	}
	return user, nil
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GenerateToken tạo JWT cho user đã xác thực
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": userInfo.UserID,
			"name":   userInfo.Name,
			"email":  userInfo.Email,
			"role":   userInfo.Role,
		},
		"exp": time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Thiếu JWT_SECRET", nil)
	}
	return token.SignedString([]byte(secret))
}

// CreateGoogleUser tạo tài khoản mới cho lần đăng nhập Google đầu tiên
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	user := models.User{
		Name:   name,
		Email:  email,
		Avatar: avatar,
		Role:   0,
		Status: 1,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return user, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi tạo tài khoản Google", err)
	}
	return user, nil
}
