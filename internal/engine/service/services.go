package service

import (
	"time"

	"github.com/go-campus/campus/internal/engine/repo"
	"github.com/go-campus/campus/internal/pkg/notify"
)

// Services 统一管理所有 service
type Services struct {
	User              *UserService
	Club              *ClubService
	ClubMember        *ClubMemberService
	ClubExecutive     *ClubExecutiveService
	ClubSecurity      *ClubSecurityService
	ClubRegistration  *ClubRegistrationService
	MembershipRequest *MembershipRequestService
	Event             *EventService
	EventScheduler    *EventSchedulerService
}

// NewServices 初始化所有 service
func NewServices(
	txm repo.ITxManager,
	repos *repo.Repositories,
	notifier notify.Notifier,
	tokenTTL time.Duration,
) *Services {
	roleSync := NewRoleSyncService()
	security := NewClubSecurityService(repos)
	tokens := NewVerificationTokenStore(tokenTTL)

	eventService := NewEventService(txm, repos, security)

	return &Services{
		User:              NewUserService(repos),
		Club:              NewClubService(txm, repos, roleSync),
		ClubMember:        NewClubMemberService(txm, repos),
		ClubExecutive:     NewClubExecutiveService(txm, repos, roleSync),
		ClubSecurity:      security,
		ClubRegistration:  NewClubRegistrationService(txm, repos, roleSync, tokens, notifier),
		MembershipRequest: NewMembershipRequestService(txm, repos, security, notifier),
		Event:             eventService,
		EventScheduler:    NewEventSchedulerService(eventService),
	}
}
