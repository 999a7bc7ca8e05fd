package services

import (
	"testing"

	"stayconnected-api/models"
	"stayconnected-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnswerFixture(t *testing.T) (AnswerService, *gorm.DB) {
	db := setupTestDB(t)
	answerRepo := repositories.NewAnswerRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	return NewAnswerService(answerRepo, questionRepo), db
}

func correctAnswerIDs(t *testing.T, db *gorm.DB, questionID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&models.Answer{}).
		Where("question_id = ? AND is_correct = ?", questionID, true).
		Pluck("id", &ids).Error)
	return ids
}

func TestCreateAnswer(t *testing.T) {
	service, db := newAnswerFixture(t)

	asker := createTestUser(t, db, "asker")
	responder := createTestUser(t, db, "responder")
	question := createTestQuestion(t, db, asker, "How to test GORM?")

	answer, err := service.CreateAnswer(question.ID, models.CreateAnswerRequest{Text: "Use sqlite in memory"}, responder.ID)
	require.NoError(t, err)

	assert.Equal(t, "Use sqlite in memory", answer.Text)
	assert.Equal(t, "responder", answer.Author)
	assert.False(t, answer.IsCorrect)
}

func TestCreateAnswerUnknownQuestion(t *testing.T) {
	service, db := newAnswerFixture(t)
	responder := createTestUser(t, db, "responder")

	_, err := service.CreateAnswer(999, models.CreateAnswerRequest{Text: "void"}, responder.ID)
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}

func TestMarkCorrectCompletesQuestion(t *testing.T) {
	service, db := newAnswerFixture(t)

	asker := createTestUser(t, db, "asker")
	responder := createTestUser(t, db, "responder")
	question := createTestQuestion(t, db, asker, "Completion check")
	answer := createTestAnswer(t, db, responder, question, "the fix")

	require.NoError(t, service.MarkCorrect(answer.ID, asker.ID))

	var reloaded models.Question
	require.NoError(t, db.First(&reloaded, question.ID).Error)
	assert.True(t, reloaded.Completed)

	assert.Equal(t, []uint{answer.ID}, correctAnswerIDs(t, db, question.ID))

	author := reloadUser(t, db, responder.ID)
	assert.Equal(t, 1, author.AcceptedCount)
	assert.Equal(t, 15, author.ReputationScore())
}

func TestMarkCorrectSwitchesAcceptedAnswer(t *testing.T) {
	service, db := newAnswerFixture(t)

	asker := createTestUser(t, db, "asker")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	question := createTestQuestion(t, db, asker, "Switch accepted")
	first := createTestAnswer(t, db, alice, question, "alice's answer")
	second := createTestAnswer(t, db, bob, question, "bob's answer")

	require.NoError(t, service.MarkCorrect(first.ID, asker.ID))
	require.NoError(t, service.MarkCorrect(second.ID, asker.ID))

	assert.Equal(t, []uint{second.ID}, correctAnswerIDs(t, db, question.ID))

	var reloaded models.Question
	require.NoError(t, db.First(&reloaded, question.ID).Error)
	assert.True(t, reloaded.Completed)

	// the displaced author's counter drops back to zero
	assert.Equal(t, 0, reloadUser(t, db, alice.ID).AcceptedCount)
	assert.Equal(t, 1, reloadUser(t, db, bob.ID).AcceptedCount)
}

func TestMarkCorrectIdempotent(t *testing.T) {
	service, db := newAnswerFixture(t)

	asker := createTestUser(t, db, "asker")
	responder := createTestUser(t, db, "responder")
	question := createTestQuestion(t, db, asker, "Idempotent")
	answer := createTestAnswer(t, db, responder, question, "same answer")

	require.NoError(t, service.MarkCorrect(answer.ID, asker.ID))
	require.NoError(t, service.MarkCorrect(answer.ID, asker.ID))

	assert.Equal(t, []uint{answer.ID}, correctAnswerIDs(t, db, question.ID))
	assert.Equal(t, 1, reloadUser(t, db, responder.ID).AcceptedCount)
}

func TestMarkCorrectOnlyQuestionAuthor(t *testing.T) {
	service, db := newAnswerFixture(t)

	asker := createTestUser(t, db, "asker")
	responder := createTestUser(t, db, "responder")
	stranger := createTestUser(t, db, "stranger")
	question := createTestQuestion(t, db, asker, "Permissions")
	answer := createTestAnswer(t, db, responder, question, "answer")

	err := service.MarkCorrect(answer.ID, stranger.ID)
	assert.ErrorAs(t, err, &models.ErrorForbidden{})

	var reloaded models.Question
	require.NoError(t, db.First(&reloaded, question.ID).Error)
	assert.False(t, reloaded.Completed)
	assert.Empty(t, correctAnswerIDs(t, db, question.ID))
}

func TestMarkCorrectUnknownAnswer(t *testing.T) {
	service, db := newAnswerFixture(t)
	asker := createTestUser(t, db, "asker")

	err := service.MarkCorrect(12345, asker.ID)
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}

func TestListForQuestion(t *testing.T) {
	service, db := newAnswerFixture(t)

	asker := createTestUser(t, db, "asker")
	responder := createTestUser(t, db, "responder")
	question := createTestQuestion(t, db, asker, "Listing")
	first := createTestAnswer(t, db, responder, question, "first")
	second := createTestAnswer(t, db, asker, question, "second")

	require.NoError(t, service.MarkCorrect(first.ID, asker.ID))

	response, err := service.ListForQuestion(question.ID)
	require.NoError(t, err)

	assert.Equal(t, question.ID, response.QuestionID)
	assert.Equal(t, "Listing", response.QuestionTitle)
	assert.Equal(t, "asker", response.Author)
	assert.True(t, response.Completed)
	assert.Equal(t, 2, response.AnswersCount)

	// creation order, oldest first
	require.Len(t, response.Results, 2)
	assert.Equal(t, first.ID, response.Results[0].ID)
	assert.Equal(t, second.ID, response.Results[1].ID)
	assert.True(t, response.Results[0].IsCorrect)
	assert.False(t, response.Results[1].IsCorrect)
}

func TestListForQuestionUnknownQuestion(t *testing.T) {
	service, _ := newAnswerFixture(t)

	_, err := service.ListForQuestion(777)
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}
