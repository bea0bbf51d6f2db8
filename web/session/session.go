// Package session wraps gin-contrib/sessions with helpers for the login
// user and flash messages.
package session

import (
	"encoding/gob"

	"storefront/database/model"
	"storefront/logger"
	"storefront/web/entity"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

func init() {
	gob.Register(model.User{})
	gob.Register(entity.Flash{})
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// AddFlash queues a one-shot message shown on the next rendered page.
// Known categories: success, danger, info.
func AddFlash(c *gin.Context, category string, message string) {
	s := sessions.Default(c)
	s.AddFlash(entity.Flash{Category: category, Message: message})
	if err := s.Save(); err != nil {
		logger.Warning("unable to save flash message:", err)
	}
}

// PopFlashes drains and returns the queued flash messages.
func PopFlashes(c *gin.Context) []entity.Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]entity.Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(entity.Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	if err := s.Save(); err != nil {
		logger.Warning("unable to clear flash messages:", err)
	}
	return flashes
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
