package validation

import (
	"fmt"
	"regexp"
)

// DeviceNamePattern определяет допустимый формат имени устройства
// Латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 3-32 символа
var DeviceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

// scopePattern определяет допустимый формат имени контекста
var scopePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	// MinDeviceNameLen минимальная длина имени устройства
	MinDeviceNameLen = 3
	// MaxDeviceNameLen максимальная длина имени устройства
	MaxDeviceNameLen = 32
)

// ValidateDeviceName проверяет, что имя устройства соответствует требованиям
// Формат: латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), подчеркивание (_)
// Длина: 3-32 символа
func ValidateDeviceName(name string) error {
	if name == "" {
		return fmt.Errorf("device name cannot be empty")
	}

	if len(name) < MinDeviceNameLen {
		return fmt.Errorf("device name must be at least %d characters long", MinDeviceNameLen)
	}

	if len(name) > MaxDeviceNameLen {
		return fmt.Errorf("device name must not exceed %d characters", MaxDeviceNameLen)
	}

	if !DeviceNamePattern.MatchString(name) {
		return fmt.Errorf("device name can only contain letters (a-z, A-Z), numbers (0-9), dashes (-) and underscores (_)")
	}

	return nil
}

// ValidateScope проверяет имя контекста (scope) задачи.
// Пустая строка допустима: означает контекст по умолчанию.
func ValidateScope(scope string) error {
	if scope == "" {
		return nil
	}

	if len(scope) > MaxDeviceNameLen {
		return fmt.Errorf("scope must not exceed %d characters", MaxDeviceNameLen)
	}

	if !scopePattern.MatchString(scope) {
		return fmt.Errorf("scope can only contain letters (a-z, A-Z), numbers (0-9), dashes (-) and underscores (_)")
	}

	return nil
}
