package service

import (
	"errors"
	"strings"

	"storefront/database"
	"storefront/database/model"
	"storefront/logger"
	"storefront/util/crypto"

	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already exists")
	// ErrBadCredentials is returned on unknown email or wrong password.
	ErrBadCredentials = errors.New("invalid credentials")
)

// ValidationError carries a user-visible message for a rejected form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

// UserService implements registration and authentication.
type UserService struct{}

// Authenticate looks up the account by email and verifies the password.
func (s *UserService) Authenticate(email string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrBadCredentials
	} else if err != nil {
		logger.Warning("authenticate err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// Register validates the form and creates the account. Only customer and
// seller roles may self-register; sellers must name their shop.
func (s *UserService) Register(username, email, password, confirm string, role model.Role, shopName string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	shopName = strings.TrimSpace(shopName)

	if username == "" || email == "" || password == "" {
		return nil, validationErr("All fields are required!")
	}
	if len(password) < 6 {
		return nil, validationErr("Password must be at least 6 characters")
	}
	if password != confirm {
		return nil, validationErr("Passwords do not match")
	}
	if role != model.RoleCustomer && role != model.RoleSeller {
		return nil, validationErr("Invalid role")
	}
	if role == model.RoleSeller && shopName == "" {
		return nil, validationErr("Shop name is required for sellers")
	}
	if role != model.RoleSeller {
		shopName = ""
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     role,
		ShopName: shopName,
	}

	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns every account, for the admin user listing.
func (s *UserService) ListUsers() ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).Order("id").Find(&users).Error
	return users, err
}

// ResetAdminPassword sets a new password on the default admin account.
// Used by the reset-admin CLI command.
func (s *UserService) ResetAdminPassword(password string) error {
	if len(password) < 6 {
		return validationErr("Password must be at least 6 characters")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	admin := &model.User{}
	err = db.Model(model.User{}).
		Where("role = ?", model.RoleAdmin).
		Order("id").
		First(admin).
		Error
	if database.IsNotFound(err) {
		return errors.New("no admin account found")
	} else if err != nil {
		return err
	}
	return db.Model(model.User{}).
		Where("id = ?", admin.Id).
		Update("password", hash).
		Error
}
