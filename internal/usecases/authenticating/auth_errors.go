package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación
var (
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrUserDisabled          = errors.New("usuario desactivado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilegios insuficientes")
	ErrUserAlreadyExists     = errors.New("usuario ya existe")

	// Errores de validación
	ErrInvalidRequest      = errors.New("petición inválida")
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")

	// Errores de base de datos
	ErrDatabaseOperation = errors.New("error al realizar la operación en la base de datos")
)

// AuthError es un error con contexto adicional de autenticación
type AuthError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	UserID  int    // ID del usuario involucrado (cuando aplica)
	Details string // Detalles adicionales
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica si el error está relacionado con credenciales
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled)
}

// IsAuthorizationError verifica si el error está relacionado con autorización
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// NewAuthError crea un nuevo error de autenticación
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError crea un nuevo error de autenticación con contexto de usuario
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
