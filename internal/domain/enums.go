package domain

// EventState is the lifecycle state of an event.
type EventState string

const (
	EventStateCreated              EventState = "CREATED"
	EventStateQuotaCalculation     EventState = "QUOTA_CALCULATION"
	EventStateRegistration         EventState = "REGISTRATION"
	EventStateRegistrationComplete EventState = "REGISTRATION_COMPLETE"
	EventStateTicketsGenerated     EventState = "TICKETS_GENERATED"
	EventStatePassed               EventState = "PASSED"
	EventStateCancelled            EventState = "CANCELLED"
)

func (s EventState) String() string { return string(s) }

func (s EventState) IsValid() bool {
	switch s {
	case EventStateCreated, EventStateQuotaCalculation, EventStateRegistration,
		EventStateRegistrationComplete, EventStateTicketsGenerated, EventStatePassed,
		EventStateCancelled:
		return true
	}
	return false
}

// EventWorth buckets events for achievement counting.
type EventWorth string

const (
	EventWorthUnset     EventWorth = "UNSET"
	EventWorthArt       EventWorth = "ART"
	EventWorthSport     EventWorth = "SPORT"
	EventWorthVolunteer EventWorth = "VOLUNTEER"
	EventWorthCity      EventWorth = "CITY"
)

func (w EventWorth) String() string { return string(w) }

func (w EventWorth) IsValid() bool {
	switch w {
	case EventWorthUnset, EventWorthArt, EventWorthSport, EventWorthVolunteer, EventWorthCity:
		return true
	}
	return false
}

// ParticipantWorth is the role of a boec at an event.
type ParticipantWorth string

const (
	ParticipantWorthDefault   ParticipantWorth = "DEFAULT"
	ParticipantWorthVolunteer ParticipantWorth = "VOLUNTEER"
	ParticipantWorthOrganizer ParticipantWorth = "ORGANIZER"
)

func (w ParticipantWorth) String() string { return string(w) }

func (w ParticipantWorth) IsValid() bool {
	switch w {
	case ParticipantWorthDefault, ParticipantWorthVolunteer, ParticipantWorthOrganizer:
		return true
	}
	return false
}

// CompetitionWorth distinguishes a plain application from a playoff entry.
type CompetitionWorth string

const (
	CompetitionWorthDefault     CompetitionWorth = "DEFAULT"
	CompetitionWorthInvolvement CompetitionWorth = "INVOLVEMENT"
)

func (w CompetitionWorth) String() string { return string(w) }

func (w CompetitionWorth) IsValid() bool {
	switch w {
	case CompetitionWorthDefault, CompetitionWorthInvolvement:
		return true
	}
	return false
}

// BrigadeState governs a brigade's eligibility for quota allocation.
type BrigadeState string

const (
	BrigadeStateCandidate BrigadeState = "CANDIDATE"
	BrigadeStateMember    BrigadeState = "MEMBER"
	BrigadeStateDead      BrigadeState = "DEAD"
)

func (s BrigadeState) String() string { return string(s) }

func (s BrigadeState) IsValid() bool {
	switch s {
	case BrigadeStateCandidate, BrigadeStateMember, BrigadeStateDead:
		return true
	}
	return false
}

// ActivityType discriminates activity feed entries.
type ActivityType string

const (
	ActivityTypeInfo           ActivityType = "INFO"
	ActivityTypeWarning        ActivityType = "WARNING"
	ActivityTypeNewAchievement ActivityType = "NEW_ACHIEVEMENT"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeInfo, ActivityTypeWarning, ActivityTypeNewAchievement:
		return true
	}
	return false
}

// AchievementType is a progress metric key. Values match the stored catalog,
// including the historical spelling of the participation and volunteer keys.
type AchievementType string

const (
	AchievementParticipationCount AchievementType = "paticipation_count"
	AchievementVolunteerCount     AchievementType = "volonteer_count"
	AchievementOrganizerCount     AchievementType = "organizer_count"
	AchievementCompetitionDefault AchievementType = "competition_default"
	AchievementCompetitionPlayoff AchievementType = "competition_playoff"
	AchievementNominations        AchievementType = "nominations"
	AchievementSeasons            AchievementType = "seasons"
	AchievementSportWins          AchievementType = "sport_wins"
	AchievementArtWins            AchievementType = "art_wins"
)

// AchievementTypes lists every metric the participation aggregator produces.
var AchievementTypes = []AchievementType{
	AchievementParticipationCount,
	AchievementVolunteerCount,
	AchievementOrganizerCount,
	AchievementCompetitionDefault,
	AchievementCompetitionPlayoff,
	AchievementNominations,
	AchievementSeasons,
	AchievementSportWins,
	AchievementArtWins,
}

func (t AchievementType) String() string { return string(t) }

func (t AchievementType) IsValid() bool {
	for _, known := range AchievementTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Role is the caller's access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }
