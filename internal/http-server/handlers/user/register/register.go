package register

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"unicode"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"eventix/internal/lib/api/response"
	"eventix/internal/lib/logger/sl"
	"eventix/internal/storage"
)

var phoneRegexp = regexp.MustCompile(`^\+90\d{10}$`)

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
}

type RegisterResponse struct {
	response.Response
	UserID int `json:"user_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	SaveUser(user storage.NewUser) (int, error)
}

func New(log *slog.Logger, saver UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.register.New"

		log = log.With(
			slog.String("op", op),
		)

		var req RegisterRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if !passwordAcceptable(req.Password) {
			log.Error("password does not meet the policy")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("password must be at least 8 characters with upper case, lower case and a digit"))

			return
		}

		if req.PhoneNumber != "" && !phoneRegexp.MatchString(req.PhoneNumber) {
			log.Error("invalid phone number format")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid phone number format"))

			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))

			return
		}

		userID, err := saver.SaveUser(storage.NewUser{
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PhoneNumber:  req.PhoneNumber,
			DateOfBirth:  req.DateOfBirth,
		})
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Warn("email already registered", slog.String("email", req.Email))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("email already registered"))

				return
			}

			log.Error("failed to save user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))

			return
		}

		log.Info("user registered", slog.Int("id", userID))

		responseCreated(w, r, userID)
	}
}

// passwordAcceptable enforces the same policy the registration form
// promises: at least 8 characters with upper case, lower case and a digit.
func passwordAcceptable(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

func responseCreated(w http.ResponseWriter, r *http.Request, userID int) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RegisterResponse{
		Response: response.OK(),
		UserID:   userID,
	})
}
