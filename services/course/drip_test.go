package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockStates(access []LessonAccess) []bool {
	states := make([]bool, len(access))
	for i, a := range access {
		states[i] = a.IsLocked
	}
	return states
}

func TestEvaluateAccessSequentialUnlock(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 3, true)
	enroll(t, db, 42, course.ID)

	access, err := EvaluateAccess(db, 42, course.ID)
	require.NoError(t, err)
	require.Len(t, access, 3)
	assert.Equal(t, []bool{false, true, true}, lockStates(access))

	_, err = MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)

	access, err = EvaluateAccess(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, lockStates(access))

	_, err = MarkLessonComplete(db, 42, course.ID, lessons[1].ID)
	require.NoError(t, err)

	access, err = EvaluateAccess(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, lockStates(access))
}

func TestEvaluateAccessSkipDoesNotUnlockLater(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 3, true)
	enroll(t, db, 42, course.ID)

	// Completing L2 without L1 unlocks L3 but leaves L2 itself gated by L1
	_, err := MarkLessonComplete(db, 42, course.ID, lessons[1].ID)
	require.NoError(t, err)

	access, err := EvaluateAccess(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, lockStates(access))
}

func TestEvaluateAccessDripDisabled(t *testing.T) {
	db := setupTestDB(t)
	course, _ := createCourseWithLessons(t, db, 1, 3, false)
	enroll(t, db, 42, course.ID)

	access, err := EvaluateAccess(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, lockStates(access))
}

func TestEvaluateAccessInstructorBypass(t *testing.T) {
	db := setupTestDB(t)
	course, _ := createCourseWithLessons(t, db, 7, 3, true)

	// Owning instructor is not enrolled yet sees everything unlocked
	access, err := EvaluateAccess(db, 7, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, lockStates(access))
}

func TestEvaluateAccessNotEnrolled(t *testing.T) {
	db := setupTestDB(t)
	course, _ := createCourseWithLessons(t, db, 1, 3, true)

	access, err := EvaluateAccess(db, 42, course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
	assert.Nil(t, access)
}

func TestEvaluateAccessMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	_, err := EvaluateAccess(db, 42, 999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestFlattenedLessonsCrossModuleOrdering(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 0, true, true)

	// Create modules out of order to exercise the sort
	moduleB := createModule(t, db, course.ID, "Module B", 2)
	moduleA := createModule(t, db, course.ID, "Module A", 1)

	b2 := createLesson(t, db, course.ID, moduleB.ID, "B2", 2)
	a1 := createLesson(t, db, course.ID, moduleA.ID, "A1", 1)
	b1 := createLesson(t, db, course.ID, moduleB.ID, "B1", 1)
	a2 := createLesson(t, db, course.ID, moduleA.ID, "A2", 2)

	lessons, err := FlattenedLessons(db, course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 4)

	got := []uint{lessons[0].ID, lessons[1].ID, lessons[2].ID, lessons[3].ID}
	assert.Equal(t, []uint{a1.ID, a2.ID, b1.ID, b2.ID}, got)
}

func TestEvaluateAccessGateSpansModules(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 0, true, true)

	moduleA := createModule(t, db, course.ID, "Module A", 1)
	moduleB := createModule(t, db, course.ID, "Module B", 2)
	a1 := createLesson(t, db, course.ID, moduleA.ID, "A1", 1)
	createLesson(t, db, course.ID, moduleB.ID, "B1", 1)

	enroll(t, db, 42, course.ID)

	// The first lesson of module B is gated by the last lesson of module A
	access, err := EvaluateAccess(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, lockStates(access))

	_, err = MarkLessonComplete(db, 42, course.ID, a1.ID)
	require.NoError(t, err)

	access, err = EvaluateAccess(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, lockStates(access))
}
