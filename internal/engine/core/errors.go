package core

import "fmt"

// 错误类别，service 层返回，router 层映射为 HTTP 状态码
var (
	// ErrNotFound 引用的记录不存在
	ErrNotFound = &kindError{"not found"}
	// ErrConflict 重复的活跃关系、重复名称或重复的待处理申请
	ErrConflict = &kindError{"conflict"}
	// ErrPrecondition 状态机前置条件不满足
	ErrPrecondition = &kindError{"precondition failed"}
	// ErrUnauthorized 无效令牌或无权限的处理人
	ErrUnauthorized = &kindError{"unauthorized"}
)

type kindError struct {
	kind string
}

func (e *kindError) Error() string {
	return e.kind
}

// 具体错误，均包裹一个错误类别，errors.Is 对类别和具体错误都成立
var (
	ErrUserNotFound    = wrap(ErrNotFound, "user not found")
	ErrClubNotFound    = wrap(ErrNotFound, "club not found")
	ErrMemberNotFound  = wrap(ErrNotFound, "membership record not found")
	ErrExecNotFound    = wrap(ErrNotFound, "executive record not found")
	ErrRequestNotFound = wrap(ErrNotFound, "membership request not found")
	ErrEventNotFound   = wrap(ErrNotFound, "event not found")

	ErrClubNameTaken      = wrap(ErrConflict, "club name already taken")
	ErrMemberAlreadyIn    = wrap(ErrConflict, "user is already an active member")
	ErrExecAlreadyIn      = wrap(ErrConflict, "user is already an active executive")
	ErrDuplicateRequest   = wrap(ErrConflict, "a pending request already exists")
	ErrEventFull          = wrap(ErrConflict, "event participant limit reached")
	ErrAlreadyParticipant = wrap(ErrConflict, "user already joined the event")

	ErrClubNotPending    = wrap(ErrPrecondition, "club is not pending review")
	ErrClubNotApproved   = wrap(ErrPrecondition, "club is not approved or not active")
	ErrMemberIsHead      = wrap(ErrPrecondition, "club head cannot be removed as member")
	ErrMemberIsExecutive = wrap(ErrPrecondition, "demote the executive role before removing the member")
	ErrHeadRowProtected  = wrap(ErrPrecondition, "club head row can only change through a head transfer")
	ErrRequestProcessed  = wrap(ErrPrecondition, "membership request already processed")

	ErrInvalidToken   = wrap(ErrUnauthorized, "invalid or expired verification token")
	ErrNotProcessor   = wrap(ErrUnauthorized, "user cannot process requests for this club")
	ErrNotRequester   = wrap(ErrUnauthorized, "only the requester can cancel the request")
	ErrNotAuthorized  = wrap(ErrUnauthorized, "operation not allowed for this user")
	ErrWrongPassword  = wrap(ErrUnauthorized, "incorrect username or password")
	ErrUserDisabled   = wrap(ErrUnauthorized, "user account is disabled")
	ErrSessionExpired = wrap(ErrUnauthorized, "session expired")
)

type wrappedError struct {
	kind *kindError
	msg  string
}

func wrap(kind *kindError, msg string) error {
	return &wrappedError{kind: kind, msg: msg}
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.kind
}

// Wrapf 在保留错误类别的前提下补充上下文
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
