package errors

var (
	ErrInvalidID = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_ID",
		Message: "malformed identifier",
	}
	ErrInsufficientBalance = &DomainError{
		Kind:    KindValidation,
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrInvalidAmount = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrInvalidSeats = &DomainError{
		Kind:    KindValidation,
		Code:    "INVALID_SEATS",
		Message: "seat count must be positive",
	}
	ErrUserNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrDriverNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "DRIVER_NOT_FOUND",
		Message: "driver not found",
	}
	ErrPackageNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "PACKAGE_NOT_FOUND",
		Message: "tour package not found",
	}
	ErrReservationNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "RESERVATION_NOT_FOUND",
		Message: "reservation not found",
	}
	ErrNoVacancies = &DomainError{
		Kind:    KindNotFound,
		Code:    "NO_VACANCIES",
		Message: "not enough vacancies on tour package",
	}
	ErrAlreadyConfirmed = &DomainError{
		Kind:    KindValidation,
		Code:    "ALREADY_CONFIRMED",
		Message: "reservation already confirmed",
	}
	ErrAlreadyCanceled = &DomainError{
		Kind:    KindValidation,
		Code:    "ALREADY_CANCELED",
		Message: "reservation already canceled",
	}
	ErrTourDatePassed = &DomainError{
		Kind:    KindValidation,
		Code:    "TOUR_DATE_PASSED",
		Message: "tour date has already passed",
	}
	ErrPackageFinalised = &DomainError{
		Kind:    KindValidation,
		Code:    "PACKAGE_FINALISED",
		Message: "tour package is finalised",
	}
	ErrPackageNotStarted = &DomainError{
		Kind:    KindValidation,
		Code:    "PACKAGE_NOT_STARTED",
		Message: "tour package has not been started",
	}
)
