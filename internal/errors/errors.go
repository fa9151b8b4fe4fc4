// Package errors defines the domain error taxonomy and its mapping onto
// HTTP status codes and the response envelope. Handlers recover every
// domain error locally; anything unrecognized maps to a generic 500.
package errors

import (
	"errors"
	"net/http"

	"fitcoach/internal/response"
)

// Validation and lookup failures.
var (
	// ErrFieldsInvalid is returned when a request field is missing or malformed.
	ErrFieldsInvalid = errors.New("欄位未填寫正確")
	// ErrInvalidID is returned when a path id is malformed or matches nothing.
	ErrInvalidID = errors.New("ID錯誤")
	// ErrUserNotFound is returned when the target user does not exist.
	ErrUserNotFound = errors.New("使用者不存在")
	// ErrCourseNotOwned is returned when a coach updates a course that is not theirs.
	ErrCourseNotOwned = errors.New("課程不存在")
	// ErrNameUnchanged is returned when a profile update changes nothing.
	ErrNameUnchanged = errors.New("使用者名稱未變更")
	// ErrPasswordRule is returned when a password fails the complexity rule.
	ErrPasswordRule = errors.New("密碼不符合規則，需要包含英文數字大小寫，最短8個字，最長16個字")
)

// Booking eligibility rejections.
var (
	// ErrAlreadyBooked is returned when a (user, course) booking row already
	// exists, active or cancelled.
	ErrAlreadyBooked = errors.New("已經報名過此課程")
	// ErrInsufficientCredits is returned when used credits reach purchased credits.
	ErrInsufficientCredits = errors.New("已無可使用堂數")
	// ErrCourseFull is returned when active bookings reach max participants.
	ErrCourseFull = errors.New("已達最大參加人數，無法參加")
)

// Conflicts. All duplicate-resource rejections map to 409.
var (
	// ErrEmailTaken is returned when signing up with a used email.
	ErrEmailTaken = errors.New("Email 已被使用")
	// ErrDuplicateName is returned when a skill or credit package name exists.
	ErrDuplicateName = errors.New("資料重複")
	// ErrAlreadyCoach is returned when promoting a user who is already a coach.
	ErrAlreadyCoach = errors.New("使用者已經是教練")
)

// Auth failures.
var (
	// ErrInvalidCredentials is returned on unknown email or wrong password.
	ErrInvalidCredentials = errors.New("使用者不存在或密碼輸入錯誤")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrNotCoach is returned when a plain user calls a coach-only endpoint.
	ErrNotCoach = errors.New("使用者尚未成為教練")
)

// internalMessage is the opaque message for unexpected failures.
const internalMessage = "伺服器錯誤"

// Map translates a domain error into (HTTP status, envelope status, message).
func Map(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrFieldsInvalid),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCourseNotOwned),
		errors.Is(err, ErrNameUnchanged),
		errors.Is(err, ErrPasswordRule),
		errors.Is(err, ErrAlreadyBooked),
		errors.Is(err, ErrInsufficientCredits),
		errors.Is(err, ErrCourseFull),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest, response.StatusFailed, err.Error()
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrAlreadyCoach):
		return http.StatusConflict, response.StatusFailed, err.Error()
	case errors.Is(err, ErrInvalidRefreshToken),
		errors.Is(err, ErrNotCoach):
		return http.StatusUnauthorized, response.StatusFailed, err.Error()
	default:
		return http.StatusInternalServerError, response.StatusError, internalMessage
	}
}
