package entity

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUserNotFound = errors.New("user not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidResource = errors.New("invalid resource")
	ErrInvalidAction   = errors.New("invalid action")
	ErrInvalidMatrix   = errors.New("invalid permissions matrix")
)

var (
	ErrNoUserSelected    = errors.New("no user selected")
	ErrResetNotConfirmed = errors.New("reset not confirmed")
)

const (
	ErrMsgInternal     = "Внутренняя ошибка"
	ErrMsgUnauthorized = "Требуется авторизация"
	ErrMsgForbidden    = "Недостаточно прав доступа"
	ErrMsgBadRequest   = "Некорректный запрос"
	ErrMsgUserNotFound = "Пользователь не найден"
)
