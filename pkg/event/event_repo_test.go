package event

import (
	"context"
	"testing"
	"time"

	"github.com/akademos/schedulebot/internal/test_utils"
	"github.com/stretchr/testify/assert"
)

var testDate = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

func userEvent(name string, createdBy string) Event {
	return Event{
		Name:      name,
		Date:      testDate,
		Category:  CategoryExam,
		EnvType:   EnvUser,
		CreatedBy: createdBy,
		CreatedAt: testDate,
	}
}

func TestRepositoryImpl_Create(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	// when
	created, err := repo.Create(ctx, userEvent("Math Final", "U1"))
	assert.NoError(t, err)

	// then
	assert.NotEmpty(t, created.ID)

	stored, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, "Math Final", stored.Name)
	assert.Equal(t, testDate, stored.Date)
	assert.Equal(t, CategoryExam, stored.Category)
	assert.Equal(t, EnvUser, stored.EnvType)
	assert.Equal(t, "U1", stored.CreatedBy)
	assert.Empty(t, stored.GroupID)
}

func TestRepositoryImpl_Find_ScopesByUser(t *testing.T) {
	// given: two users and one group share the same category
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, userEvent("Mine", "U1"))
	assert.NoError(t, err)
	_, err = repo.Create(ctx, userEvent("Theirs", "U2"))
	assert.NoError(t, err)
	_, err = repo.Create(ctx, Event{
		Name: "Group Exam", Date: testDate, Category: CategoryExam,
		EnvType: EnvGroup, CreatedBy: "U1", GroupID: "G1", CreatedAt: testDate,
	})
	assert.NoError(t, err)

	// when
	mine, err := repo.Find(ctx, Filter{Category: CategoryExam, EnvType: EnvUser, CreatedBy: "U1"})
	assert.NoError(t, err)
	group, err := repo.Find(ctx, Filter{Category: CategoryExam, EnvType: EnvGroup, GroupID: "G1"})
	assert.NoError(t, err)

	// then
	assert.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)
	assert.Len(t, group, 1)
	assert.Equal(t, "Group Exam", group[0].Name)
	assert.Equal(t, "G1", group[0].GroupID)
}

func TestRepositoryImpl_Find_ScopesByCategory(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	exam := userEvent("Exam", "U1")
	replacement := userEvent("Replacement", "U1")
	replacement.Category = CategoryReplacement
	_, err := repo.Create(ctx, exam)
	assert.NoError(t, err)
	_, err = repo.Create(ctx, replacement)
	assert.NoError(t, err)

	found, err := repo.Find(ctx, Filter{Category: CategoryReplacement, EnvType: EnvUser, CreatedBy: "U1"})

	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Replacement", found[0].Name)
}

func TestRepositoryImpl_FindByID_Missing(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)

	found, err := repo.FindByID(context.Background(), "does-not-exist")

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepositoryImpl_Save(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, userEvent("Math Final", "U1"))
	assert.NoError(t, err)

	created.Name = "Math Retake"
	created.Date = testDate.AddDate(0, 0, 7)
	err = repo.Save(ctx, created)
	assert.NoError(t, err)

	stored, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Math Retake", stored.Name)
	assert.Equal(t, testDate.AddDate(0, 0, 7), stored.Date)
	// immutable fields survive
	assert.Equal(t, "U1", stored.CreatedBy)
	assert.Equal(t, CategoryExam, stored.Category)
}

func TestRepositoryImpl_Remove(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, userEvent("Math Final", "U1"))
	assert.NoError(t, err)

	err = repo.Remove(ctx, created.ID)
	assert.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)
}
