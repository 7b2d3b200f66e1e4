package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Final score bounds (20-point scale) and the sub-score midpoint used
// when a client omits one of the four sub-scores.
const (
	FinalScoreMin   = 0.0
	FinalScoreMax   = 20.0
	SubScoreDefault = 3
)

// TastingDB represents a scored tasting row. Tastings are immutable once
// created except for deletion; they reference a user and a free-text bottle
// identifier, never a session, so they survive session cleanup.
type TastingDB struct {
	ID               uuid.UUID `json:"id" db:"id"`                               // Primary key
	UserID           uuid.UUID `json:"user_id" db:"user_id"`                     // Owning user
	BottleIdentifier *string   `json:"bottle_identifier" db:"bottle_identifier"` // Free-text grouping label, not a bottle FK
	WineName         string    `json:"wine_name" db:"wine_name"`                 // Wine name
	WineType         *string   `json:"wine_type" db:"wine_type"`                 // Wine type (red, white, ...)
	Vintage          *int      `json:"vintage" db:"vintage"`                     // Vintage year
	Region           *string   `json:"region" db:"region"`                       // Producing region
	AppearanceScore  int       `json:"appearance_score" db:"appearance_score"`   // Sub-score 1-5
	AromaScore       int       `json:"aroma_score" db:"aroma_score"`             // Sub-score 1-5
	TasteScore       int       `json:"taste_score" db:"taste_score"`             // Sub-score 1-5
	FinishScore      int       `json:"finish_score" db:"finish_score"`           // Sub-score 1-5
	FinalScore       float64   `json:"final_score" db:"final_score"`             // Client-computed score in [0, 20]
	Notes            *string   `json:"notes" db:"notes"`                         // Free-text notes
	TastingDate      time.Time `json:"tasting_date" db:"tasting_date"`           // When the tasting happened
	CreatedAt        time.Time `json:"created_at" db:"created_at"`               // Row creation timestamp
}

// TastingWithUser is a tasting row joined with its owner's identity,
// used by the arbiter listing.
type TastingWithUser struct {
	TastingDB
	Username  string  `json:"username" db:"username"`
	FirstName *string `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	Email     string  `json:"email" db:"email"`
}

// UserStatsRow is the raw per-user aggregate scanned from SQL.
type UserStatsRow struct {
	TotalTastings   int             `db:"total_tastings"`
	AverageScore    sql.NullFloat64 `db:"average_score"`
	BestScore       sql.NullFloat64 `db:"best_score"`
	WorstScore      sql.NullFloat64 `db:"worst_score"`
	Excellent       int             `db:"excellent_tastings"`
	Good            int             `db:"good_tastings"`
	Average         int             `db:"average_tastings"`
	Poor            int             `db:"poor_tastings"`
	LastTastingDate sql.NullTime    `db:"last_tasting_date"`
	ActiveDays      int             `db:"active_days"`
}

// GlobalStatsRow is the raw all-user aggregate scanned from SQL.
type GlobalStatsRow struct {
	TotalUsers         int             `db:"total_users"`
	TotalTastings      int             `db:"total_tastings"`
	GlobalAverageScore sql.NullFloat64 `db:"global_average_score"`
	HighestScore       sql.NullFloat64 `db:"highest_score"`
	ActiveDays         int             `db:"active_days"`
	TastingsLast30Days int             `db:"tastings_last_30_days"`
	NewUsersLast30Days int             `db:"new_users_last_30_days"`
}

// DetailedStatsRow is the raw global aggregate for the arbiter dashboard.
type DetailedStatsRow struct {
	TotalTastings int             `db:"total_tastings"`
	TotalUsers    int             `db:"total_users"`
	AverageScore  sql.NullFloat64 `db:"average_score"`
	MinScore      sql.NullFloat64 `db:"min_score"`
	MaxScore      sql.NullFloat64 `db:"max_score"`
}

// TopUserRow is one leaderboard entry of the arbiter dashboard.
type TopUserRow struct {
	Username     string  `db:"username"`
	FirstName    *string `db:"first_name"`
	LastName     *string `db:"last_name"`
	TastingCount int     `db:"tasting_count"`
	AverageScore float64 `db:"average_score"`
	BestScore    float64 `db:"best_score"`
}

// BottleRankingRow is one bottle group of the ranking queries. Groups are
// keyed by (bottle_identifier, wine_name, wine_type, vintage, region);
// UserCount is only populated by the global variant.
type BottleRankingRow struct {
	BottleIdentifier string    `db:"bottle_identifier"`
	WineName         string    `db:"wine_name"`
	WineType         *string   `db:"wine_type"`
	Vintage          *int      `db:"vintage"`
	Region           *string   `db:"region"`
	TastingCount     int       `db:"tasting_count"`
	AverageScore     float64   `db:"average_score"`
	BestScore        float64   `db:"best_score"`
	WorstScore       float64   `db:"worst_score"`
	LastTastingDate  time.Time `db:"last_tasting_date"`
	UserCount        int       `db:"user_count"`
}
