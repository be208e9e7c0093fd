package auth

import (
	"database/sql"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"paralympics-api-go/pkg/model"
)

// AuthService handles authentication operations
type AuthService struct {
	db        *sqlx.DB
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(db *sqlx.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
	}
}

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateJWT creates a new JWT token for authenticated users
func (s *AuthService) GenerateJWT(userID int, username string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userID
	claims["username"] = username
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	return token.SignedString(s.jwtSecret)
}

// Login authenticates a user and returns a signed token
func (s *AuthService) Login(creds model.UserCredentials) (*model.User, string, error) {
	var user model.User

	err := s.db.Get(&user,
		s.db.Rebind("SELECT * FROM users WHERE username = ?"), creds.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", errors.New("invalid username or password")
		}
		return nil, "", err
	}

	if !CheckPassword(creds.Password, user.PasswordHash) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := s.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// RegisterUser handles user registration
func (s *AuthService) RegisterUser(req model.RegistrationRequest) (int64, error) {
	var count int
	err := s.db.Get(&count,
		s.db.Rebind("SELECT COUNT(*) FROM users WHERE username = ?"), req.Username)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, errors.New("username already exists")
	}

	err = s.db.Get(&count,
		s.db.Rebind("SELECT COUNT(*) FROM users WHERE email = ?"), req.Email)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, errors.New("email already exists")
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	var userID int64
	err = s.db.QueryRow(
		s.db.Rebind(`INSERT INTO users (username, password_hash, email, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id`),
		req.Username, hashedPassword, req.Email, time.Now(), time.Now()).Scan(&userID)
	if err != nil {
		return 0, err
	}

	return userID, nil
}

// GetUserByID fetches a user by id
func (s *AuthService) GetUserByID(userID int) (*model.User, error) {
	var user model.User
	err := s.db.Get(&user,
		s.db.Rebind("SELECT * FROM users WHERE id = ?"), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}
