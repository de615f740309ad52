package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bestie-chat/internal/model"
	"bestie-chat/internal/repository"
)

func setupRepo(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db), mockDB
}

func TestSQLiteRepository_CreateConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults the title and assigns the id", func(t *testing.T) {
		repo, mockDB := setupRepo(t)

		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO conversations (title, personality_config, user_id, created_at) VALUES (?, ?, ?, ?)")).
			WithArgs(model.DefaultConversationTitle, nil, nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(5, 1))

		conversation := &model.Conversation{}
		err := repo.CreateConversation(ctx, conversation)
		require.NoError(t, err)
		assert.Equal(t, int64(5), conversation.ID)
		assert.Equal(t, model.DefaultConversationTitle, conversation.Title)
		assert.False(t, conversation.CreatedAt.IsZero())
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Serializes the personality config", func(t *testing.T) {
		repo, mockDB := setupRepo(t)

		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO conversations")).
			WithArgs("Custom", sqlmock.AnyArg(), nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		conversation := &model.Conversation{
			Title:             "Custom",
			PersonalityConfig: &model.PersonalityConfig{Name: "Alex", SystemPrompt: "You are Alex."},
		}
		require.NoError(t, repo.CreateConversation(ctx, conversation))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteRepository_GetConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo, mockDB := setupRepo(t)

		createdAt := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "title", "personality_config", "user_id", "created_at"}).
			AddRow(3, "Trip planning", `{"name":"Alex","system_prompt":"You are Alex."}`, nil, createdAt)
		mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, title, personality_config, user_id, created_at FROM conversations WHERE id = ?")).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		conversation, err := repo.GetConversation(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), conversation.ID)
		assert.Equal(t, "Trip planning", conversation.Title)
		require.NotNil(t, conversation.PersonalityConfig)
		assert.Equal(t, "Alex", conversation.PersonalityConfig.Name)
		assert.Nil(t, conversation.UserID)
	})

	t.Run("Not found maps to ErrNotFound", func(t *testing.T) {
		repo, mockDB := setupRepo(t)

		mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, title, personality_config, user_id, created_at FROM conversations WHERE id = ?")).
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetConversation(ctx, 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestSQLiteRepository_UpdateConversationTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectExec(regexp.QuoteMeta("UPDATE conversations SET title = ? WHERE id = ?")).
			WithArgs("Generated Title", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateConversationTitle(ctx, 1, "Generated Title"))
	})

	t.Run("Missing conversation maps to ErrNotFound", func(t *testing.T) {
		repo, mockDB := setupRepo(t)
		mockDB.ExpectExec(regexp.QuoteMeta("UPDATE conversations SET title = ? WHERE id = ?")).
			WithArgs("Generated Title", int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateConversationTitle(ctx, 404, "Generated Title"), repository.ErrNotFound)
	})
}

func TestSQLiteRepository_CreateMessage(t *testing.T) {
	ctx := context.Background()
	repo, mockDB := setupRepo(t)

	mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO messages (conversation_id, role, content, created_at) VALUES (?, ?, ?, ?)")).
		WithArgs(int64(2), model.RoleUser, "Hello", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	message := &model.Message{ConversationID: 2, Role: model.RoleUser, Content: "Hello"}
	require.NoError(t, repo.CreateMessage(ctx, message))
	assert.Equal(t, int64(11), message.ID)
	assert.False(t, message.CreatedAt.IsZero())
}

func TestSQLiteRepository_GetMessagesByConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("Messages come back in insertion order", func(t *testing.T) {
		repo, mockDB := setupRepo(t)

		base := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "conversation_id", "role", "content", "created_at"}).
			AddRow(1, 2, model.RoleUser, "Hello", base).
			AddRow(2, 2, model.RoleAssistant, "Hi!", base.Add(time.Second)).
			AddRow(3, 2, model.RoleUser, "How are you?", base.Add(2*time.Second))
		mockDB.ExpectQuery("SELECT id, conversation_id, role, content, created_at").
			WithArgs(int64(2)).
			WillReturnRows(rows)

		messages, err := repo.GetMessagesByConversation(ctx, 2)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, []int64{1, 2, 3}, []int64{messages[0].ID, messages[1].ID, messages[2].ID})
		for i := 1; i < len(messages); i++ {
			assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
		}
	})

	t.Run("Empty conversation yields an empty non-nil slice", func(t *testing.T) {
		repo, mockDB := setupRepo(t)

		rows := sqlmock.NewRows([]string{"id", "conversation_id", "role", "content", "created_at"})
		mockDB.ExpectQuery("SELECT id, conversation_id, role, content, created_at").
			WithArgs(int64(9)).
			WillReturnRows(rows)

		messages, err := repo.GetMessagesByConversation(ctx, 9)
		require.NoError(t, err)
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})
}
