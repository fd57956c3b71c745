package service

import (
	"net/http"

	"github.com/qaboard-dev/qaboard/internal/domain"
	"github.com/qaboard-dev/qaboard/internal/errors"
	"github.com/qaboard-dev/qaboard/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(creds domain.Credentials) (domain.UserId, error)
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage   AuthStorage
	jwt       Jwt
	validator CredentialsValidator
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	UserByName(name string) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type CredentialsValidator interface {
	Name(name string) error
	Password(password string) error
}

func NewAuth(storage AuthStorage, jwt Jwt, validator CredentialsValidator) *Auth {
	return &Auth{storage, jwt, validator}
}

func (a *Auth) Register(creds domain.Credentials) (domain.UserId, error) {
	if err := a.validator.Name(creds.Name); err != nil {
		return -1, err
	}
	if err := a.validator.Password(creds.Password); err != nil {
		return -1, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return -1, err
	}

	return a.storage.SaveUser(domain.User{Name: creds.Name, PassHash: string(passHash)})
}

func (a *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := a.storage.UserByName(creds.Name)
	if err != nil {
		if errors.IsNotFound(err) {
			// same message as a wrong password, no account enumeration
			return "", &errors.ErrorWithStatusCode{Message: "Invalid name or password", StatusCode: http.StatusUnauthorized}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", &errors.ErrorWithStatusCode{Message: "Invalid name or password", StatusCode: http.StatusUnauthorized}
	}

	return a.jwt.NewToken(user)
}
