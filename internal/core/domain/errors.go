package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrNotSuperAdmin      = errors.New("account is not allowed to use the super-admin console")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrSessionExpired     = errors.New("session expired")

	ErrInvalidQuery     = errors.New("invalid list query")
	ErrStatsUnavailable = errors.New("dashboard statistics are unavailable, please retry later")

	ErrNoRecipes           = errors.New("no recipes to import")
	ErrNoTargetTenants     = errors.New("no target tenants selected")
	ErrDuplicateTenant     = errors.New("tenant selected more than once")
	ErrMalformedRecipeFile = errors.New("recipe file is not valid JSON")
	ErrInvalidRecipeFile   = errors.New("recipe file failed validation")
)
