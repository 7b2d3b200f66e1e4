package models

import (
	"time"

	"github.com/google/uuid"
)

// View types are the externally reported shapes of the aggregation
// queries. Scores are strings with exactly one decimal, nil when the
// underlying aggregate covered zero rows.

// ProfileStats accompanies the authenticated user's profile.
type ProfileStats struct {
	TotalTastings int     `json:"totalTastings"`
	AverageScore  *string `json:"averageScore"`
	BestScore     *string `json:"bestScore"`
}

// UserStatisticsView is the per-user statistics report.
type UserStatisticsView struct {
	TotalTastings     int        `json:"totalTastings"`
	AverageScore      *string    `json:"averageScore"`
	BestScore         *string    `json:"bestScore"`
	WorstScore        *string    `json:"worstScore"`
	ExcellentTastings int        `json:"excellentTastings"`
	GoodTastings      int        `json:"goodTastings"`
	AverageTastings   int        `json:"averageTastings"`
	PoorTastings      int        `json:"poorTastings"`
	LastTastingDate   *time.Time `json:"lastTastingDate"`
	ActiveDays        int        `json:"activeDays"`
}

// GlobalStatisticsView is the all-user activity report.
type GlobalStatisticsView struct {
	TotalUsers         int     `json:"totalUsers"`
	TotalTastings      int     `json:"totalTastings"`
	GlobalAverageScore *string `json:"globalAverageScore"`
	HighestScore       *string `json:"highestScore"`
	ActiveDays         int     `json:"activeDays"`
	TastingsLast30Days int     `json:"tastingsLast30Days"`
	NewUsersLast30Days int     `json:"newUsersLast30Days"`
}

// TopUserView is one leaderboard entry of the detailed statistics.
type TopUserView struct {
	Username     string  `json:"username"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	TastingCount int     `json:"tastingCount"`
	AverageScore string  `json:"averageScore"`
	BestScore    string  `json:"bestScore"`
}

// DetailedStatisticsView is the arbiter dashboard report.
type DetailedStatisticsView struct {
	TotalTastings int           `json:"totalTastings"`
	TotalUsers    int           `json:"totalUsers"`
	AverageScore  *string       `json:"averageScore"`
	MinScore      *string       `json:"minScore"`
	MaxScore      *string       `json:"maxScore"`
	TopUsers      []TopUserView `json:"topUsers"`
}

// RankedWine describes the wine of a bottle ranking group.
type RankedWine struct {
	Name    string  `json:"name"`
	Type    *string `json:"type"`
	Vintage *int    `json:"vintage"`
	Region  *string `json:"region"`
}

// BottleRankingView is one entry of the bottle leaderboards. Rank is the
// 1-based position in the full ordered result; UserCount is only set by
// the global variant.
type BottleRankingView struct {
	Rank             int        `json:"rank"`
	BottleIdentifier string     `json:"bottleIdentifier"`
	Wine             RankedWine `json:"wine"`
	TastingCount     int        `json:"tastingCount"`
	AverageScore     string     `json:"averageScore"`
	BestScore        string     `json:"bestScore"`
	WorstScore       string     `json:"worstScore"`
	LastTastingDate  time.Time  `json:"lastTastingDate"`
	UserCount        int        `json:"userCount,omitempty"`
}

// ParticipantView is one row of the admin participant listing.
type ParticipantView struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	FirstName          *string   `json:"firstName"`
	LastName           *string   `json:"lastName"`
	IsActive           bool      `json:"isActive"`
	NeedsPasswordSetup bool      `json:"needsPasswordSetup"`
	CreatedAt          time.Time `json:"createdAt"`
	TastingCount       int       `json:"tastingCount"`
	AverageScore       *string   `json:"averageScore"`
}

// SessionDetail bundles a session with its bottles and participants.
type SessionDetail struct {
	Session      SessionDB            `json:"session"`
	Bottles      []BottleDB           `json:"bottles"`
	Participants []SessionParticipant `json:"participants"`
}

// TastingEvent is the audit record published when a tasting is created.
type TastingEvent struct {
	EventID    string    `json:"event_id"`
	Operation  string    `json:"operation"`
	TastingID  uuid.UUID `json:"tasting_id"`
	UserID     uuid.UUID `json:"user_id"`
	WineName   string    `json:"wine_name"`
	FinalScore float64   `json:"final_score"`
	Timestamp  int64     `json:"timestamp"`
}
