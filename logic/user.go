package logic

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"polyglot-backend/config"
	"polyglot-backend/dao"
	"polyglot-backend/models"
)

// UserLogic handles registration, login and credential issuance
type UserLogic struct {
	userDAO *dao.UserDAO
}

func NewUserLogic(userDAO *dao.UserDAO) *UserLogic {
	return &UserLogic{userDAO: userDAO}
}

// GetUser retrieves a user by id
func (l *UserLogic) GetUser(userID uuid.UUID) (*models.User, error) {
	user, err := l.userDAO.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (l *UserLogic) generateJWT(userID uuid.UUID) (string, time.Time, error) {
	expireAt := time.Now().Add(time.Duration(config.GlobalConfig.Auth.ExpHour) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     expireAt.Unix(),
	})
	tokenString, err := token.SignedString([]byte(config.GlobalConfig.Auth.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expireAt, nil
}

// Register creates a new user and issues a token for it
func (l *UserLogic) Register(email, password, firstName, lastName, nativeLanguage string) (*models.User, string, error) {
	_, err := l.userDAO.GetUserByEmail(email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.GlobalConfig.Auth.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:          email,
		PasswordHash:   string(hash),
		FirstName:      firstName,
		LastName:       lastName,
		NativeLanguage: nativeLanguage,
	}
	if err := l.userDAO.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, _, err := l.generateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the credentials and issues a token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (l *UserLogic) Login(email, password string) (*models.User, string, error) {
	user, err := l.userDAO.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := l.generateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
