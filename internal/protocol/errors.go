package protocol

import "fmt"

// ErrorCode — закрытое перечисление ошибок companion-сервера.
// Сервер присылает строковый тег в AppError; всё незнакомое
// сворачивается в ErrorUnknown и никогда не паникует.
type ErrorCode int

const (
	ErrorNone ErrorCode = iota
	ErrorUnknown
	ErrorServerError
	ErrorBanned
	ErrorRateLimit
	ErrorNotFound
	ErrorWrongType
	ErrorNoTeam
	ErrorNoClan
	ErrorNoMap
	ErrorNoCamera
	ErrorNoPlayer
	ErrorAccessDenied
	ErrorPlayerOnline
	ErrorInvalidPlayerID
	ErrorInvalidID
	ErrorInvalidMotd
	ErrorTooManySubscribers
	ErrorNotEnabled
	ErrorMessageNotSent
)

var errorTags = map[string]ErrorCode{
	"server_error":         ErrorServerError,
	"banned":               ErrorBanned,
	"rate_limit":           ErrorRateLimit,
	"not_found":            ErrorNotFound,
	"wrong_type":           ErrorWrongType,
	"no_team":              ErrorNoTeam,
	"no_clan":              ErrorNoClan,
	"no_map":               ErrorNoMap,
	"no_camera":            ErrorNoCamera,
	"no_player":            ErrorNoPlayer,
	"access_denied":        ErrorAccessDenied,
	"player_online":        ErrorPlayerOnline,
	"invalid_playerid":     ErrorInvalidPlayerID,
	"invalid_id":           ErrorInvalidID,
	"invalid_motd":         ErrorInvalidMotd,
	"too_many_subscribers": ErrorTooManySubscribers,
	"not_enabled":          ErrorNotEnabled,
	"message_not_sent":     ErrorMessageNotSent,
}

// ErrorCodeFromTag переводит тег сервера в код; пустой тег — ErrorNone.
func ErrorCodeFromTag(tag string) ErrorCode {
	if tag == "" {
		return ErrorNone
	}
	if code, ok := errorTags[tag]; ok {
		return code
	}
	return ErrorUnknown
}

func (c ErrorCode) String() string {
	for tag, code := range errorTags {
		if code == c {
			return tag
		}
	}
	switch c {
	case ErrorNone:
		return "none"
	default:
		return "unknown"
	}
}

// RemoteError — ошибка, которую вернул сервер в AppResponse.
type RemoteError struct {
	Tag  string
	Code ErrorCode
}

func NewRemoteError(tag string) *RemoteError {
	return &RemoteError{Tag: tag, Code: ErrorCodeFromTag(tag)}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server error: %s", e.Tag)
}
