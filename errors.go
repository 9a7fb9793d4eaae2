package lemon

import "errors"

// Kind classifies an API failure. Callers branch on it via errors.Is or
// IsKind instead of matching message strings.
type Kind string

const (
	KindGeneric             Kind = "generic"
	KindBadRequest          Kind = "bad_request"
	KindUnauthorized        Kind = "unauthorized"
	KindPaymentRequired     Kind = "payment_required"
	KindForbidden           Kind = "forbidden"
	KindNotFound            Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindUnprocessableEntity Kind = "unprocessable_entity"
	KindOutOfRateLimit      Kind = "out_of_rate_limit"
	KindInternalServer      Kind = "internal_server"
	KindServiceUnavailable  Kind = "service_unavailable"
)

// Error is the single error type returned by all resource methods.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports kind equality, so
//
//	errors.Is(err, &lemon.Error{Kind: lemon.KindForbidden})
//
// holds for any forbidden error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newError(kind Kind, message string) *Error {
	if message == "" {
		message = "An unknown error occurred"
	}
	return &Error{Kind: kind, Message: message}
}

// errorCodes maps the API's semantic error codes to a kind and message.
// Codes whose message composes a server-supplied detail (invalid_query,
// forbidden_in_current_state) are handled separately in classifyCode.
var errorCodes = map[string]struct {
	kind    Kind
	message string
}{
	"order_idempotency_violation":      {KindBadRequest, "Idempotency violation within the last 7 days"},
	"token_invalid":                    {KindUnauthorized, "Your API key is revoked or user is deleted/suspended"},
	"pin_not_set":                      {KindConflict, "PIN is not set"},
	"pin_missing":                      {KindBadRequest, "PIN is missing"},
	"pin_invalid":                      {KindForbidden, "PIN is invalid"},
	"withdraw_insufficient_funds":      {KindUnprocessableEntity, "Insufficient funds"},
	"withdraw_limit_exceeded":          {KindUnprocessableEntity, "Withdraw limit exceeded"},
	"withdraw_request_limit_exceeded":  {KindUnprocessableEntity, "Withdraw request limit exceeded"},
	"plan_not_allowed":                 {KindPaymentRequired, "Plan not allowed"},
	"insufficient_holdings":            {KindUnprocessableEntity, "Insufficient holdings to sell"},
	"order_expiration_date_invalid":    {KindBadRequest, "Order expires before market opens again"},
	"order_total_price_limit_exceeded": {KindBadRequest, "Order total price limit exceeded"},
	"forbidden_for_venue":              {KindBadRequest, "Order couldn't be placed for the venue in the current API environment"},
	"trading_disabled":                 {KindBadRequest, "Order can't be placed if trading is disabled"},
	"order_limit_exceeded":             {KindBadRequest, "Daily limit of orders exceeded"},
	"instrument_not_tradable":          {KindBadRequest, "Instrument is not tradable"},
	"account_insufficient_funds":       {KindUnprocessableEntity, "Insufficient funds to place or activate order"},
	"trading_blocked":                  {KindServiceUnavailable, "Trading is currently blocked globally"},
	"order_not_inactive":               {KindConflict, "Order can't be activated if it is not inactive"},
	"order_not_terminated":             {KindConflict, "Order can't be cancelled if it is not terminating or terminated state"},
}

// statusKinds maps HTTP status codes to a kind when the body carries no
// known semantic error code.
var statusKinds = map[int]Kind{
	400: KindBadRequest,
	401: KindUnauthorized,
	402: KindPaymentRequired,
	403: KindForbidden,
	404: KindNotFound,
	409: KindConflict,
	422: KindUnprocessableEntity,
	429: KindOutOfRateLimit,
	500: KindInternalServer,
	503: KindServiceUnavailable,
}

// Classify turns any failure from the transport into exactly one *Error.
//
// Precedence: an already classified error is returned unchanged; a response
// carrying a known semantic error code wins over its HTTP status; a known
// status alone maps via statusKinds; anything else (network failure, decode
// failure, unmapped status) is KindGeneric. The fallback message is used
// whenever the server did not supply a more specific one.
func Classify(err error, fallback string) *Error {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr
	}

	var aerr *apiError
	if errors.As(err, &aerr) {
		if e := classifyCode(aerr); e != nil {
			return e
		}
		if kind, ok := statusKinds[aerr.Status]; ok {
			if kind == KindNotFound {
				return newError(kind, "Resource could not be found")
			}
			return newError(kind, fallback)
		}
	}

	return newError(KindGeneric, fallback)
}

func classifyCode(aerr *apiError) *Error {
	switch aerr.ErrorCode {
	case "invalid_query":
		msg := "Query is not valid"
		if aerr.ErrorMessage != "" {
			msg += ": " + aerr.ErrorMessage
		}
		return newError(KindBadRequest, msg)

	case "forbidden_in_current_state":
		msg := "Forbidden in current state"
		if aerr.ErrorMessage != "" {
			msg += ": " + aerr.ErrorMessage
		}
		return newError(KindConflict, msg)
	}

	if m, ok := errorCodes[aerr.ErrorCode]; ok {
		return newError(m.kind, m.message)
	}
	return nil
}
