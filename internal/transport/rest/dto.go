package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

type boecResponse struct {
	ID                  string  `json:"id"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	MiddleName          *string `json:"middleName,omitempty"`
	FullName            string  `json:"fullName"`
	VKID                *int64  `json:"vkId,omitempty"`
	UnreadActivityCount int     `json:"unreadActivityCount"`
}

func toBoecResponse(b *domain.Boec) boecResponse {
	return boecResponse{
		ID:                  b.ID.String(),
		FirstName:           b.FirstName,
		LastName:            b.LastName,
		MiddleName:          b.MiddleName,
		FullName:            b.FullName(),
		VKID:                b.VKID,
		UnreadActivityCount: b.UnreadActivityCount,
	}
}

type achievementResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Goal         int       `json:"goal"`
	HoldersCount int       `json:"holdersCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toAchievementResponse(a domain.Achievement) achievementResponse {
	return achievementResponse{
		ID:           a.ID.String(),
		Title:        a.Title,
		Description:  a.Description,
		Type:         a.Type.String(),
		Goal:         a.Goal,
		HoldersCount: a.HoldersCount,
		CreatedAt:    a.CreatedAt,
	}
}

func toAchievementList(in []domain.Achievement) []achievementResponse {
	out := make([]achievementResponse, len(in))
	for i, a := range in {
		out[i] = toAchievementResponse(a)
	}
	return out
}

type warningResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type activityResponse struct {
	ID          string               `json:"id"`
	Type        string               `json:"type"`
	Seen        bool                 `json:"seen"`
	CreatedAt   time.Time            `json:"createdAt"`
	Warning     *warningResponse     `json:"warning,omitempty"`
	Achievement *achievementResponse `json:"achievement,omitempty"`
}

func toActivityList(in []domain.Activity) []activityResponse {
	out := make([]activityResponse, len(in))
	for i, a := range in {
		resp := activityResponse{
			ID:        a.ID.String(),
			Type:      a.Type.String(),
			Seen:      a.Seen,
			CreatedAt: a.CreatedAt,
		}
		if a.Warning != nil {
			resp.Warning = &warningResponse{ID: a.Warning.ID.String(), Text: a.Warning.Text, CreatedAt: a.Warning.CreatedAt}
		}
		if a.Achievement != nil {
			ach := toAchievementResponse(*a.Achievement)
			resp.Achievement = &ach
		}
		out[i] = resp
	}
	return out
}

// progressResponse always carries every counter, zero when the boec has none.
type progressResponse map[string]int

func toProgressResponse(p domain.Progress) progressResponse {
	out := make(progressResponse, len(domain.AchievementTypes))
	for _, t := range domain.AchievementTypes {
		out[t.String()] = p.Get(t)
	}
	return out
}

type eventResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	State      string    `json:"state"`
	Worth      string    `json:"worth"`
	IsTicketed bool      `json:"isTicketed"`
	StartDate  time.Time `json:"startDate"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:         e.ID.String(),
		Title:      e.Title,
		State:      e.State.String(),
		Worth:      e.Worth.String(),
		IsTicketed: e.IsTicketed,
		StartDate:  e.StartDate,
	}
}

type quotaResponse struct {
	BrigadeID string `json:"brigadeId"`
	Count     int    `json:"count"`
}

func toQuotaList(in []domain.EventQuota) []quotaResponse {
	out := make([]quotaResponse, len(in))
	for i, q := range in {
		out[i] = quotaResponse{BrigadeID: q.BrigadeID.String(), Count: q.Count}
	}
	return out
}

type participantResponse struct {
	ID         string  `json:"id"`
	EventID    string  `json:"eventId"`
	BoecID     string  `json:"boecId"`
	BrigadeID  *string `json:"brigadeId,omitempty"`
	Worth      string  `json:"worth"`
	IsApproved bool    `json:"isApproved"`
}

func toParticipantResponse(p *domain.Participant) participantResponse {
	return participantResponse{
		ID:         p.ID.String(),
		EventID:    p.EventID.String(),
		BoecID:     p.BoecID.String(),
		BrigadeID:  idString(p.BrigadeID),
		Worth:      p.Worth.String(),
		IsApproved: p.IsApproved,
	}
}

type competitionParticipantResponse struct {
	ID            string   `json:"id"`
	CompetitionID string   `json:"competitionId"`
	Title         string   `json:"title"`
	Worth         string   `json:"worth"`
	BoecIDs       []string `json:"boecIds"`
}

func toCompetitionParticipantResponse(p *domain.CompetitionParticipant) competitionParticipantResponse {
	return competitionParticipantResponse{
		ID:            p.ID.String(),
		CompetitionID: p.CompetitionID.String(),
		Title:         p.Title,
		Worth:         p.Worth.String(),
		BoecIDs:       idStrings(p.BoecIDs),
	}
}

type brigadeResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	AreaID  string `json:"areaId"`
	ShtabID string `json:"shtabId"`
	State   string `json:"state"`
}

func toBrigadeResponse(b *domain.Brigade) brigadeResponse {
	return brigadeResponse{
		ID:      b.ID.String(),
		Title:   b.Title,
		AreaID:  b.AreaID.String(),
		ShtabID: b.ShtabID.String(),
		State:   b.State.String(),
	}
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
