package progress

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/department"
	"github.com/northlane/goalboard/internal/goal"
	"github.com/northlane/goalboard/internal/upload"
	"github.com/northlane/goalboard/internal/user"
	util "github.com/northlane/goalboard/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&department.Department{},
		&user.User{},
		&goal.Goal{},
		&Progress{},
		&upload.Upload{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedGoal(t *testing.T, db *gorm.DB, current float64) (*goal.Goal, *user.User) {
	t.Helper()

	dept := &department.Department{ID: uuid.New(), Name: "Sales"}
	if err := db.Create(dept).Error; err != nil {
		t.Fatalf("failed to seed department: %v", err)
	}

	deptID := dept.ID
	u := &user.User{
		ID:           uuid.New(),
		AuthUserID:   uuid.New(),
		Email:        "rep@example.com",
		FullName:     "Sales Rep",
		Role:         user.RoleEmployee,
		DepartmentID: &deptID,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	ownerID := u.ID
	g := &goal.Goal{
		ID:           uuid.New(),
		Title:        "Close deals",
		DepartmentID: dept.ID,
		OwnerUserID:  &ownerID,
		TargetValue:  100,
		CurrentValue: current,
		Unit:         "deals",
		StartDate:    util.NewLocalDate(2026, 1, 1),
		DueDate:      util.NewLocalDate(2026, 12, 31),
		Status:       goal.StatusOnTrack,
	}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}

	return g, u
}

func TestSubmitAppliesDeltaCumulatively(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	g, u := seedGoal(t, db, 40)

	updated, clamped, err := repo.Submit(&Progress{
		ID:     uuid.New(),
		GoalID: g.ID,
		UserID: u.ID,
		Value:  25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clamped {
		t.Error("expected no clamping")
	}
	if updated.CurrentValue != 65 {
		t.Errorf("expected current value 65, got %v", updated.CurrentValue)
	}

	updated, _, err = repo.Submit(&Progress{
		ID:     uuid.New(),
		GoalID: g.ID,
		UserID: u.ID,
		Value:  10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CurrentValue != 75 {
		t.Errorf("expected current value 75, got %v", updated.CurrentValue)
	}

	entries, err := repo.ListByGoal(g.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 ledger entries, got %d", len(entries))
	}
}

func TestSubmitClampsNegativeResultAtZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	g, u := seedGoal(t, db, 10)

	updated, clamped, err := repo.Submit(&Progress{
		ID:     uuid.New(),
		GoalID: g.ID,
		UserID: u.ID,
		Value:  -30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !clamped {
		t.Error("expected clamping to be reported")
	}
	if updated.CurrentValue != 0 {
		t.Errorf("expected current value 0, got %v", updated.CurrentValue)
	}

	entries, err := repo.ListByGoal(g.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Value != -30 {
		t.Error("expected the raw delta kept in the ledger")
	}
}

func TestSubmitMissingGoalRollsBackLedgerEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	_, u := seedGoal(t, db, 0)

	missing := uuid.New()
	_, _, err := repo.Submit(&Progress{
		ID:     uuid.New(),
		GoalID: missing,
		UserID: u.ID,
		Value:  5,
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}

	entries, err := repo.ListByGoal(missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected rolled back ledger, got %d entries", len(entries))
	}
}

func TestSubmitDuplicateIdempotencyKeyIsRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	g, u := seedGoal(t, db, 0)

	key := "retry-1"
	first := &Progress{ID: uuid.New(), GoalID: g.ID, UserID: u.ID, Value: 5, IdempotencyKey: &key}
	if _, _, err := repo.Submit(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := &Progress{ID: uuid.New(), GoalID: g.ID, UserID: u.ID, Value: 5, IdempotencyKey: &key}
	_, _, err := repo.Submit(dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}

	found, err := repo.FindByIdempotencyKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.ID != first.ID {
		t.Error("expected the original entry back for the key")
	}

	var g2 goal.Goal
	if err := db.First(&g2, "id = ?", g.ID).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g2.CurrentValue != 5 {
		t.Errorf("expected delta applied once, got %v", g2.CurrentValue)
	}
}

func TestFindByIdempotencyKeyReturnsNilWhenUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	found, err := repo.FindByIdempotencyKey("never-used")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for unknown key, got %+v", found)
	}
}
