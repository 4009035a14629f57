package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/nutrition"
)

var ErrLogNotFound = errors.New("food log not found")

const dailyCacheTTL = 5 * time.Minute

// FoodLogService handles food logging and the daily/periodic reads over it.
// The redis client is optional; without it every read recomputes.
type FoodLogService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewFoodLogService(db *gorm.DB, redisClient *redis.Client) *FoodLogService {
	return &FoodLogService{db: db, redis: redisClient}
}

// CreateLogParams are the inputs for logging a food.
type CreateLogParams struct {
	FoodID        uuid.UUID
	Date          time.Time
	MealType      models.MealType
	Quantity      float64
	Unit          string
	TotalCalories int
	Notes         string
}

// UpdateLogParams are the mutable fields of an existing log.
type UpdateLogParams struct {
	MealType      models.MealType
	Quantity      float64
	Unit          string
	TotalCalories int
	Notes         string
}

// Create logs a food for the user. The referenced food must exist at
// creation time; afterwards the log stands on its own stored calorie total.
func (s *FoodLogService) Create(ctx context.Context, userID uuid.UUID, params CreateLogParams) (*models.FoodLog, error) {
	if !params.MealType.Valid() {
		return nil, nutrition.ErrUnknownMealType
	}

	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", params.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	entry := models.FoodLog{
		UserID:        userID,
		FoodID:        params.FoodID,
		Date:          params.Date,
		MealType:      params.MealType,
		Quantity:      params.Quantity,
		Unit:          params.Unit,
		TotalCalories: params.TotalCalories,
		Notes:         params.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	entry.Food = &food

	s.invalidateDaily(ctx, userID, params.Date)
	return &entry, nil
}

// Update modifies an existing log owned by the user.
func (s *FoodLogService) Update(ctx context.Context, userID, logID uuid.UUID, params UpdateLogParams) (*models.FoodLog, error) {
	if !params.MealType.Valid() {
		return nil, nutrition.ErrUnknownMealType
	}

	var entry models.FoodLog
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	entry.MealType = params.MealType
	entry.Quantity = params.Quantity
	entry.Unit = params.Unit
	entry.TotalCalories = params.TotalCalories
	entry.Notes = params.Notes

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Preload("Food").First(&entry, "id = ?", entry.ID).Error; err != nil {
		return nil, err
	}

	s.invalidateDaily(ctx, userID, entry.Date)
	return &entry, nil
}

// Delete removes a log owned by the user. Deletion is terminal; there is no
// undo.
func (s *FoodLogService) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	var entry models.FoodLog
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLogNotFound
		}
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		return err
	}

	s.invalidateDaily(ctx, userID, entry.Date)
	return nil
}

// DailyReport is the per-day view the dashboard renders: the raw logs
// newest first, the aggregated summary, and the echoed query date.
type DailyReport struct {
	Logs    []models.FoodLog       `json:"logs"`
	Summary nutrition.DailySummary `json:"summary"`
	Date    time.Time              `json:"date"`
}

// Daily collects all logs in the calendar-day window of date, aggregates
// them against the user's goal, and returns the report. Summaries are
// recomputed from the full log set on every call, so concurrent writes can
// never skew a running counter; the Redis cache in front is invalidated by
// any write to the same user-day.
func (s *FoodLogService) Daily(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyReport, error) {
	start := startOfDay(date)
	goal := s.dailyGoal(ctx, userID)

	if cached := s.cachedDaily(ctx, userID, start); cached != nil {
		// The goal can change between cache fill and read; remaining is
		// always recomputed against the current goal.
		cached.Summary.RemainingCalories = goal - cached.Summary.TotalCalories
		return cached, nil
	}

	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, start.AddDate(0, 0, 1)).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	entries := make([]nutrition.MealEntry, len(logs))
	for i, l := range logs {
		entries[i] = nutrition.MealEntry{MealType: l.MealType, Calories: l.TotalCalories}
	}
	summary, err := nutrition.Aggregate(entries, goal)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Logs:    logs,
		Summary: *summary,
		Date:    start,
	}
	s.cacheDaily(ctx, userID, start, report)
	return report, nil
}

// StatsPeriod selects the lookback window for Stats.
type StatsPeriod string

const (
	PeriodWeek  StatsPeriod = "week"
	PeriodMonth StatsPeriod = "month"
	PeriodYear  StatsPeriod = "year"
)

// DayStat is one day's calorie total within a stats report.
type DayStat struct {
	Date          string `json:"date"`
	TotalCalories int    `json:"total_calories"`
	Count         int    `json:"count"`
}

// StatsReport summarizes calorie intake per day over a period.
type StatsReport struct {
	Period          StatsPeriod `json:"period"`
	Stats           []DayStat   `json:"stats"`
	AverageCalories float64     `json:"average_calories"`
}

// Stats groups the user's logs per calendar day over the period and reports
// the average daily intake across days that have logs.
func (s *FoodLogService) Stats(ctx context.Context, userID uuid.UUID, period StatsPeriod) (*StatsReport, error) {
	days := 7
	switch period {
	case PeriodMonth:
		days = 30
	case PeriodYear:
		days = 365
	case PeriodWeek:
	default:
		period = PeriodWeek
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DayStat)
	for _, l := range logs {
		key := l.Date.UTC().Format("2006-01-02")
		stat, ok := byDay[key]
		if !ok {
			stat = &DayStat{Date: key}
			byDay[key] = stat
		}
		stat.TotalCalories += l.TotalCalories
		stat.Count++
	}

	stats := make([]DayStat, 0, len(byDay))
	for _, stat := range byDay {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date < stats[j].Date })

	var average float64
	if len(stats) > 0 {
		total := 0
		for _, stat := range stats {
			total += stat.TotalCalories
		}
		average = float64(total) / float64(len(stats))
	}

	return &StatsReport{
		Period:          period,
		Stats:           stats,
		AverageCalories: average,
	}, nil
}

// dailyGoal reads the user's current calorie goal, falling back to the
// default when no profile row exists.
func (s *FoodLogService) dailyGoal(ctx context.Context, userID uuid.UUID) int {
	goal := models.DefaultDailyCalorieGoal
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err == nil {
		goal = profile.DailyCalorieGoal
	}
	return goal
}

// startOfDay truncates t to midnight UTC; logs are bucketed by UTC calendar
// day.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dailyCacheKey(userID uuid.UUID, day time.Time) string {
	return "daily_report:" + userID.String() + ":" + day.Format("2006-01-02")
}

func (s *FoodLogService) cachedDaily(ctx context.Context, userID uuid.UUID, day time.Time) *DailyReport {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, dailyCacheKey(userID, day)).Bytes()
	if err != nil {
		return nil
	}
	var report DailyReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil
	}
	return &report
}

func (s *FoodLogService) cacheDaily(ctx context.Context, userID uuid.UUID, day time.Time, report *DailyReport) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, dailyCacheKey(userID, day), data, dailyCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache daily report: %v", err)
	}
}

func (s *FoodLogService) invalidateDaily(ctx context.Context, userID uuid.UUID, date time.Time) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, dailyCacheKey(userID, startOfDay(date))).Err(); err != nil {
		log.Printf("Failed to invalidate daily report cache: %v", err)
	}
}
