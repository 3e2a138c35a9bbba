package utils

// Kode error yang stabil untuk client, ikut terkirim di field "error"
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeMissingParams          = "MISSING_PARAMS"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeInvalidRefreshToken    = "INVALID_REFRESH_TOKEN"
	CodeRestaurantNotFound     = "RESTAURANT_NOT_FOUND"
	CodeTableNotFound          = "TABLE_NOT_FOUND"
	CodeReservationNotFound    = "RESERVATION_NOT_FOUND"
	CodeReviewNotFound         = "REVIEW_NOT_FOUND"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeTableAlreadyReserved   = "TABLE_ALREADY_RESERVED"
	CodeDuplicateTable         = "DUPLICATE_TABLE"
	CodeDuplicateEmail         = "DUPLICATE_EMAIL"
	CodeAlreadyReviewed        = "ALREADY_REVIEWED"
	CodeAccessDenied           = "ACCESS_DENIED"
	CodeCannotCancel           = "CANNOT_CANCEL"
	CodePartySizeTooLarge      = "PARTY_SIZE_TOO_LARGE"
	CodePartySizeTooSmall      = "PARTY_SIZE_TOO_SMALL"
	CodeNoCompletedReservation = "NO_COMPLETED_RESERVATION"
	CodeHasReservations        = "HAS_RESERVATIONS"
	CodeInternal               = "INTERNAL_ERROR"
)

type ApiError struct {
	Code    string
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

// Validation membungkus error binding/parsing menjadi VALIDATION_ERROR
func Validation(err error) *ApiError {
	return &ApiError{Code: CodeValidation, Message: err.Error()}
}

var (
	ErrMissingParams        = NewApiError(CodeMissingParams, "restaurant id and date are required")
	ErrInvalidCredentials   = NewApiError(CodeInvalidCredentials, "invalid credentials")
	ErrInvalidRefreshToken  = NewApiError(CodeInvalidRefreshToken, "invalid refresh token")
	ErrRestaurantNotFound   = NewApiError(CodeRestaurantNotFound, "restaurant not found")
	ErrTableNotFound        = NewApiError(CodeTableNotFound, "table not found or unavailable")
	ErrReservationNotFound  = NewApiError(CodeReservationNotFound, "reservation not found")
	ErrReviewNotFound       = NewApiError(CodeReviewNotFound, "review not found")
	ErrUserNotFound         = NewApiError(CodeUserNotFound, "user not found or inactive")
	ErrTableAlreadyReserved = NewApiError(CodeTableAlreadyReserved, "table is already reserved for this time slot")
	ErrDuplicateTable       = NewApiError(CodeDuplicateTable, "table number already exists for this restaurant")
	ErrDuplicateEmail       = NewApiError(CodeDuplicateEmail, "user with this email already exists")
	ErrAlreadyReviewed      = NewApiError(CodeAlreadyReviewed, "you have already reviewed this restaurant")
	ErrAccessDenied         = NewApiError(CodeAccessDenied, "access denied")
	ErrCannotCancel         = NewApiError(CodeCannotCancel, "cannot cancel this reservation")
	ErrPartySizeTooLarge    = NewApiError(CodePartySizeTooLarge, "party size exceeds table capacity")
	ErrPartySizeTooSmall    = NewApiError(CodePartySizeTooSmall, "party size below minimum table capacity")
	ErrNoCompletedRes       = NewApiError(CodeNoCompletedReservation, "you must have a completed reservation to review this restaurant")
	ErrHasReservations      = NewApiError(CodeHasReservations, "cannot delete table with existing reservations")
)

// CanAccess adalah predikat otorisasi owner-or-admin yang dipakai seragam
// oleh endpoint reservation dan review.
func CanAccess(actorID uint, actorRole string, ownerID uint) bool {
	if actorID == ownerID {
		return true
	}
	return actorRole == "ADMIN" || actorRole == "SUPER_ADMIN"
}
