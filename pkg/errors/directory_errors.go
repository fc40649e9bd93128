package errors

import "fmt"

// Error codes for the directory domain. The transport layer maps these to
// user-facing responses; the engine only ever raises them, never retries.
const (
	CodeActivityNameEmpty      = "ACTIVITY_NAME_EMPTY"
	CodeActivityNameTooLong    = "ACTIVITY_NAME_TOO_LONG"
	CodeActivityNotFound       = "ACTIVITY_NOT_FOUND"
	CodeActivityNameExists     = "ACTIVITY_NAME_EXISTS"
	CodeNestingLevelExceeded   = "ACTIVITY_NESTING_LEVEL_EXCEEDED"
	CodeActivityParentCycle    = "ACTIVITY_PARENT_CYCLE"
	CodeAddressEmpty           = "BUILDING_ADDRESS_EMPTY"
	CodeAddressTooLong         = "BUILDING_ADDRESS_TOO_LONG"
	CodeInvalidLatitude        = "BUILDING_LATITUDE_INVALID"
	CodeInvalidLongitude       = "BUILDING_LONGITUDE_INVALID"
	CodeBuildingNotFound       = "BUILDING_NOT_FOUND"
	CodeBuildingAddressExists  = "BUILDING_ADDRESS_EXISTS"
	CodeOrganizationNameEmpty  = "ORGANIZATION_NAME_EMPTY"
	CodeOrganizationNotFound   = "ORGANIZATION_NOT_FOUND"
	CodeOrganizationNameExists = "ORGANIZATION_NAME_EXISTS"
	CodePhoneEmpty             = "ORGANIZATION_PHONE_EMPTY"
	CodePhoneInvalid           = "ORGANIZATION_PHONE_INVALID"
	CodeUsernameEmpty          = "USERNAME_EMPTY"
	CodeUsernameInvalid        = "USERNAME_INVALID"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeUserExists             = "USER_EXISTS"
	CodePasswordInvalid        = "PASSWORD_INVALID"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeAPIKeyNotFound         = "API_KEY_NOT_FOUND"
	CodeAPIKeyBanned           = "API_KEY_BANNED"
	CodeNoCommandHandlers      = "COMMAND_HANDLERS_NOT_REGISTERED"
	CodeNoQueryHandler         = "QUERY_HANDLER_NOT_REGISTERED"
)

// NewNestingLevelExceededError reports an activity chain deeper than the
// configured maximum, carrying both the computed and the allowed level.
func NewNestingLevelExceededError(currentLevel, maxLevel int) *AppError {
	return NewInvariantError(
		fmt.Sprintf("activity nesting level exceeded: current level is %d, maximum allowed level is %d", currentLevel, maxLevel)).
		WithCode(CodeNestingLevelExceeded).
		WithDetail("current_level", currentLevel).
		WithDetail("max_level", maxLevel)
}

// NewActivityParentCycleError reports a cycle detected while walking parent
// references. Well-formed construction cannot produce one; this guards
// against corrupted storage.
func NewActivityParentCycleError(activityID string) *AppError {
	return NewInvariantError("activity parent chain contains a cycle").
		WithCode(CodeActivityParentCycle).
		WithDetail("activity_id", activityID)
}

// NewActivityNotFoundError reports a missing activity by id or name.
func NewActivityNotFoundError(ref string) *AppError {
	return NewNotFoundError("activity").
		WithCode(CodeActivityNotFound).
		WithDetail("activity", ref)
}

// NewActivityNameExistsError reports a duplicate activity name.
func NewActivityNameExistsError(name string) *AppError {
	return NewConflictError(fmt.Sprintf("activity with name '%s' already exists", name)).
		WithCode(CodeActivityNameExists).
		WithDetail("name", name)
}

// NewBuildingNotFoundError reports a missing building by id or address.
func NewBuildingNotFoundError(ref string) *AppError {
	return NewNotFoundError("building").
		WithCode(CodeBuildingNotFound).
		WithDetail("building", ref)
}

// NewBuildingAddressExistsError reports a duplicate building address.
func NewBuildingAddressExistsError(address string) *AppError {
	return NewConflictError(fmt.Sprintf("building at address '%s' already exists", address)).
		WithCode(CodeBuildingAddressExists).
		WithDetail("address", address)
}

// NewOrganizationNotFoundError reports a missing organization by id.
func NewOrganizationNotFoundError(id string) *AppError {
	return NewNotFoundError("organization").
		WithCode(CodeOrganizationNotFound).
		WithDetail("organization_id", id)
}

// NewOrganizationNameExistsError reports a duplicate organization name.
func NewOrganizationNameExistsError(name string) *AppError {
	return NewConflictError(fmt.Sprintf("organization with name '%s' already exists", name)).
		WithCode(CodeOrganizationNameExists).
		WithDetail("name", name)
}

// NewUserNotFoundError reports a missing user by id.
func NewUserNotFoundError(id string) *AppError {
	return NewNotFoundError("user").
		WithCode(CodeUserNotFound).
		WithDetail("user_id", id)
}

// NewUserExistsError reports a duplicate username.
func NewUserExistsError(username string) *AppError {
	return NewConflictError(fmt.Sprintf("user with username '%s' already exists", username)).
		WithCode(CodeUserExists).
		WithDetail("username", username)
}

// NewPasswordPolicyError reports a password that fails the minimum policy.
func NewPasswordPolicyError(reason string) *AppError {
	return NewValidationError(reason).
		WithCode(CodePasswordInvalid)
}

// NewInvalidCredentialsError reports a failed authentication attempt without
// revealing whether the username exists.
func NewInvalidCredentialsError() *AppError {
	return NewUnauthorizedError("invalid username or password").
		WithCode(CodeInvalidCredentials)
}

// NewAPIKeyNotFoundError reports a missing API key.
func NewAPIKeyNotFoundError(key string) *AppError {
	return NewNotFoundError("API key").
		WithCode(CodeAPIKeyNotFound).
		WithDetail("key", key)
}

// NewAPIKeyBannedError reports a banned API key.
func NewAPIKeyBannedError(key string) *AppError {
	return NewForbiddenError("API key is banned").
		WithCode(CodeAPIKeyBanned).
		WithDetail("key", key)
}
