package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout formats week start dates for storage keys.
const dateLayout = "2006-01-02"

// PlanRepository persists weekly plans as JSON snapshots keyed by
// (user, week start). Regeneration overwrites the whole snapshot; there are
// no partial updates.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Save upserts a plan for a user's week.
func (r *PlanRepository) Save(ctx context.Context, userID string, plan *WeeklyPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly plan: %w", err)
	}
	ingredientsJSON, err := json.Marshal(plan.IngredientsUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredient snapshot: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO weekly_meal_plans (id, user_id, week_start_date, mode, plan_data, ingredients_used, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, week_start_date) DO UPDATE SET
			id = excluded.id,
			mode = excluded.mode,
			plan_data = excluded.plan_data,
			ingredients_used = excluded.ingredients_used,
			updated_at = excluded.updated_at`,
		plan.ID, userID, plan.WeekStart.Format(dateLayout), string(plan.Mode),
		string(planJSON), string(ingredientsJSON), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save weekly plan: %w", err)
	}
	return nil
}

// Load fetches the plan for a user's week, or (nil, nil) when none exists.
func (r *PlanRepository) Load(ctx context.Context, userID string, weekStart time.Time) (*WeeklyPlan, error) {
	var planJSON string
	err := r.db.QueryRowContext(ctx, `
		SELECT plan_data FROM weekly_meal_plans
		WHERE user_id = ? AND week_start_date = ?`,
		userID, weekStart.Format(dateLayout),
	).Scan(&planJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly plan: %w", err)
	}

	var plan WeeklyPlan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weekly plan: %w", err)
	}
	return &plan, nil
}

// ExistsForWeek reports whether a plan is stored for a user's week.
func (r *PlanRepository) ExistsForWeek(ctx context.Context, userID string, weekStart time.Time) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM weekly_meal_plans
		WHERE user_id = ? AND week_start_date = ?`,
		userID, weekStart.Format(dateLayout),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check for weekly plan: %w", err)
	}
	return true, nil
}
