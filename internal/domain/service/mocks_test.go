package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

// memStore is a shared in-memory stand-in for the persistence gateway. The
// fake repositories below mirror the postgres adapters' contract, including
// the errorz kinds they translate storage errors into.
type memStore struct {
	users        map[int64]*entity.User
	clubs        map[string]*entity.Club
	members      map[string]*entity.ClubMember
	events       map[string]*entity.Event
	participants map[string]*entity.EventParticipant
	categories   map[int64]*entity.Category
	cities       map[int64]*entity.City

	nextID int
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[int64]*entity.User),
		clubs:        make(map[string]*entity.Club),
		members:      make(map[string]*entity.ClubMember),
		events:       make(map[string]*entity.Event),
		participants: make(map[string]*entity.EventParticipant),
		categories:   map[int64]*entity.Category{1: {ID: 1, Name: "Sports"}},
		cities:       map[int64]*entity.City{1: {ID: 1, Name: "Seoul"}},
	}
}

func (m *memStore) newID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func memberKey(clubID string, userID int64) string {
	return fmt.Sprintf("%s|%d", clubID, userID)
}

func participantKey(eventID string, userID int64) string {
	return fmt.Sprintf("%s|%d", eventID, userID)
}

func (m *memStore) addUser(id int64, name string) *entity.User {
	user := &entity.User{ID: id, Name: name, Email: fmt.Sprintf("u%d@example.com", id)}
	m.users[id] = user
	return user
}

func (m *memStore) addClub(name string, leaderID int64, maxPeople int) *entity.Club {
	club := &entity.Club{ID: m.newID("club"), Name: name, LeaderID: leaderID, MaxPeople: maxPeople}
	m.clubs[club.ID] = club
	m.members[memberKey(club.ID, leaderID)] = &entity.ClubMember{
		ClubID: club.ID,
		UserID: leaderID,
		Status: valueobject.MemberStatusApproved,
	}
	return club
}

func (m *memStore) addMember(clubID string, userID int64, status valueobject.MemberStatus) {
	m.members[memberKey(clubID, userID)] = &entity.ClubMember{ClubID: clubID, UserID: userID, Status: status}
}

func (m *memStore) addEvent(event entity.Event) *entity.Event {
	event.ID = m.newID("event")
	m.events[event.ID] = &event
	m.participants[participantKey(event.ID, event.HostID)] = &entity.EventParticipant{
		EventID: event.ID,
		UserID:  event.HostID,
	}
	return m.events[event.ID]
}

func (m *memStore) addParticipant(eventID string, userID int64) {
	m.participants[participantKey(eventID, userID)] = &entity.EventParticipant{EventID: eventID, UserID: userID}
}

func (m *memStore) countApproved(clubID string) int64 {
	var count int64
	for _, member := range m.members {
		if member.ClubID == clubID && member.Status == valueobject.MemberStatusApproved {
			count++
		}
	}
	return count
}

func (m *memStore) countParticipants(eventID string) int64 {
	var count int64
	for _, participant := range m.participants {
		if participant.EventID == eventID {
			count++
		}
	}
	return count
}

// fakeUserRepo

type fakeUserRepo struct{ store *memStore }

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	for _, existing := range f.store.users {
		if existing.Email == user.Email {
			return nil, errorz.Conflict("user with email %s already exists", user.Email)
		}
	}
	user.ID = int64(len(f.store.users) + 1)
	f.store.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	user, ok := f.store.users[id]
	if !ok {
		return nil, errorz.NotFound("user %d not found", id)
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errorz.NotFound("user with email %s not found", email)
}

// fakeClubRepo

type fakeClubRepo struct{ store *memStore }

func (f *fakeClubRepo) CreateWithLeader(_ context.Context, club *entity.Club) (*entity.Club, error) {
	for _, existing := range f.store.clubs {
		if existing.Name == club.Name {
			return nil, errorz.Conflict("club with name %q already exists", club.Name)
		}
	}
	club.ID = f.store.newID("club")
	f.store.clubs[club.ID] = club
	f.store.addMember(club.ID, club.LeaderID, valueobject.MemberStatusApproved)
	return club, nil
}

func (f *fakeClubRepo) Get(_ context.Context, id string) (*entity.Club, error) {
	club, ok := f.store.clubs[id]
	if !ok {
		return nil, errorz.NotFound("club %s not found", id)
	}
	// a copy, so callers mutating the result only persist via Update
	clone := *club
	return &clone, nil
}

func (f *fakeClubRepo) GetAll(_ context.Context, filter dto.ClubFilter) ([]entity.Club, error) {
	var clubs []entity.Club
	for _, club := range f.store.clubs {
		if filter.Name != nil && club.Name != *filter.Name {
			continue
		}
		if filter.LeaderID != nil && club.LeaderID != *filter.LeaderID {
			continue
		}
		if leader, ok := f.store.users[club.LeaderID]; !ok || leader.DeletedAt.Valid {
			continue
		}
		clubs = append(clubs, *club)
	}
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].ID < clubs[j].ID })
	return clubs, nil
}

func (f *fakeClubRepo) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	if _, ok := f.store.clubs[club.ID]; !ok {
		return nil, errorz.NotFound("club %s not found", club.ID)
	}
	for _, existing := range f.store.clubs {
		if existing.ID != club.ID && existing.Name == club.Name {
			return nil, errorz.Conflict("club with name %q already exists", club.Name)
		}
	}
	f.store.clubs[club.ID] = club
	return club, nil
}

// fakeClubMemberRepo

type fakeClubMemberRepo struct{ store *memStore }

func (f *fakeClubMemberRepo) Get(_ context.Context, clubID string, userID int64) (*entity.ClubMember, error) {
	member, ok := f.store.members[memberKey(clubID, userID)]
	if !ok {
		return nil, errorz.NotFound("user %d has no membership in club %s", userID, clubID)
	}
	return member, nil
}

func (f *fakeClubMemberRepo) CountApproved(_ context.Context, clubID string) (int64, error) {
	return f.store.countApproved(clubID), nil
}

func (f *fakeClubMemberRepo) GetRoster(_ context.Context, clubID string) ([]dto.ClubMemberInfo, error) {
	var roster []dto.ClubMemberInfo
	for _, member := range f.store.members {
		if member.ClubID != clubID || member.Status != valueobject.MemberStatusApproved {
			continue
		}
		user, ok := f.store.users[member.UserID]
		if !ok || user.DeletedAt.Valid {
			continue
		}
		roster = append(roster, dto.ClubMemberInfo{UserID: user.ID, Name: user.Name, Status: member.Status})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].UserID < roster[j].UserID })
	return roster, nil
}

func (f *fakeClubMemberRepo) JoinWithCapacityCheck(_ context.Context, clubID string, userID int64, maxPeople int) error {
	if f.store.countApproved(clubID) >= int64(maxPeople) {
		return errorz.Conflict("club %s is already full", clubID)
	}
	if _, ok := f.store.members[memberKey(clubID, userID)]; ok {
		return errorz.Conflict("user %d already has a membership row in club %s", userID, clubID)
	}
	f.store.addMember(clubID, userID, valueobject.MemberStatusPending)
	return nil
}

func (f *fakeClubMemberRepo) ApproveWithCapacityCheck(_ context.Context, clubID string, userID int64, maxPeople int) error {
	if f.store.countApproved(clubID) >= int64(maxPeople) {
		return errorz.Conflict("club %s is already full", clubID)
	}
	member, ok := f.store.members[memberKey(clubID, userID)]
	if !ok {
		return errorz.NotFound("user %d has no membership in club %s", userID, clubID)
	}
	member.Status = valueobject.MemberStatusApproved
	return nil
}

func (f *fakeClubMemberRepo) UpdateStatus(_ context.Context, clubID string, userID int64, status valueobject.MemberStatus) error {
	member, ok := f.store.members[memberKey(clubID, userID)]
	if !ok {
		return errorz.NotFound("user %d has no membership in club %s", userID, clubID)
	}
	member.Status = status
	return nil
}

// fakeEventRepo

type fakeEventRepo struct{ store *memStore }

func (f *fakeEventRepo) CreateWithHost(_ context.Context, event *entity.Event) (*entity.Event, error) {
	return f.store.addEvent(*event), nil
}

func (f *fakeEventRepo) Get(_ context.Context, id string) (*entity.Event, error) {
	event, ok := f.store.events[id]
	if !ok {
		return nil, errorz.NotFound("event %s not found", id)
	}
	return event, nil
}

func (f *fakeEventRepo) GetAll(_ context.Context, filter dto.EventFilter) ([]entity.Event, error) {
	var events []entity.Event
	for _, event := range f.store.events {
		if filter.HostID != nil && event.HostID != *filter.HostID {
			continue
		}
		if filter.CategoryID != nil && event.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.CityID != nil && event.CityID != *filter.CityID {
			continue
		}
		if filter.ClubID != nil && (event.ClubID == nil || *event.ClubID != *filter.ClubID) {
			continue
		}
		events = append(events, *event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (f *fakeEventRepo) GetByClubID(_ context.Context, clubID string) ([]entity.Event, error) {
	var events []entity.Event
	for _, event := range f.store.events {
		if event.ClubID != nil && *event.ClubID == clubID {
			events = append(events, *event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

// fakeParticipantRepo

type fakeParticipantRepo struct{ store *memStore }

func (f *fakeParticipantRepo) Get(_ context.Context, eventID string, userID int64) (*entity.EventParticipant, error) {
	participant, ok := f.store.participants[participantKey(eventID, userID)]
	if !ok {
		return nil, errorz.NotFound("user %d is not registered for event %s", userID, eventID)
	}
	return participant, nil
}

func (f *fakeParticipantRepo) Count(_ context.Context, eventID string) (int64, error) {
	return f.store.countParticipants(eventID), nil
}

func (f *fakeParticipantRepo) GetByEventID(_ context.Context, eventID string) ([]entity.EventParticipant, error) {
	var participants []entity.EventParticipant
	for _, participant := range f.store.participants {
		if participant.EventID == eventID {
			participants = append(participants, *participant)
		}
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].UserID < participants[j].UserID })
	return participants, nil
}

func (f *fakeParticipantRepo) JoinWithCapacityCheck(_ context.Context, eventID string, userID int64, maxPeople int) error {
	if f.store.countParticipants(eventID) >= int64(maxPeople) {
		return errorz.Conflict("event %s is already full", eventID)
	}
	if _, ok := f.store.participants[participantKey(eventID, userID)]; ok {
		return errorz.Conflict("user %d is already registered for event %s", userID, eventID)
	}
	f.store.addParticipant(eventID, userID)
	return nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, eventID string, userID int64) error {
	delete(f.store.participants, participantKey(eventID, userID))
	return nil
}

// fakeCatalogRepo

type fakeCatalogRepo struct{ store *memStore }

func (f *fakeCatalogRepo) GetCategory(_ context.Context, id int64) (*entity.Category, error) {
	category, ok := f.store.categories[id]
	if !ok {
		return nil, errorz.NotFound("category %d not found", id)
	}
	return category, nil
}

func (f *fakeCatalogRepo) GetCity(_ context.Context, id int64) (*entity.City, error) {
	city, ok := f.store.cities[id]
	if !ok {
		return nil, errorz.NotFound("city %d not found", id)
	}
	return city, nil
}

// fakeCascadeRepo applies plans the same way the postgres executor does, so
// scenario tests observe the post-cascade state.

type fakeCascadeRepo struct {
	store *memStore
	// failOn aborts the plan when the given event is reached, leaving the
	// store untouched to model transactional rollback.
	failOn string
}

func (f *fakeCascadeRepo) Apply(_ context.Context, plan dto.CascadePlan) error {
	for _, step := range plan.Steps {
		if f.failOn != "" && step.EventID == f.failOn {
			return errorz.Unavailable(fmt.Errorf("boom"), "apply %s cascade for club %s", plan.Trigger, plan.ClubID)
		}
	}

	for _, step := range plan.Steps {
		switch step.Action {
		case valueobject.ActionDeleteEvent:
			for key, participant := range f.store.participants {
				if participant.EventID == step.EventID {
					delete(f.store.participants, key)
				}
			}
			delete(f.store.events, step.EventID)
		case valueobject.ActionRemoveParticipation:
			delete(f.store.participants, participantKey(step.EventID, step.UserID))
		case valueobject.ActionDetachFromClub:
			if event, ok := f.store.events[step.EventID]; ok {
				event.ClubID = nil
			}
		}
	}

	switch plan.Trigger {
	case valueobject.TriggerMemberLeave:
		delete(f.store.members, memberKey(plan.ClubID, plan.UserID))
	case valueobject.TriggerClubDelete:
		for key, member := range f.store.members {
			if member.ClubID == plan.ClubID {
				delete(f.store.members, key)
			}
		}
		delete(f.store.clubs, plan.ClubID)
	}
	return nil
}

// fakeDetailCache

type fakeDetailCache struct {
	entries map[string]*dto.ClubDetail
}

func newFakeDetailCache() *fakeDetailCache {
	return &fakeDetailCache{entries: make(map[string]*dto.ClubDetail)}
}

func (f *fakeDetailCache) Get(_ context.Context, clubID string) (*dto.ClubDetail, error) {
	detail, ok := f.entries[clubID]
	if !ok {
		return nil, errorz.NotFound("club %s is not cached", clubID)
	}
	return detail, nil
}

func (f *fakeDetailCache) Set(_ context.Context, detail *dto.ClubDetail) error {
	f.entries[detail.ID] = detail
	return nil
}

func (f *fakeDetailCache) Delete(_ context.Context, clubID string) error {
	delete(f.entries, clubID)
	return nil
}
