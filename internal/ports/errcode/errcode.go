package errcode

type Code string

const (
	NoDataFound Code = "NO_DATA_FOUND"
	InvalidDate Code = "INVALID_DATE"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
