package user

import "errors"

var (
	ErrUserNotFound            = errors.New("Usuario no encontrado")
	ErrUserEmailExists         = errors.New("El correo ya está registrado")
	ErrInsufficientPermissions = errors.New("Acceso denegado: rol sin permisos suficientes")
)
